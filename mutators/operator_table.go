package mutators

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// ErrUnknownOperator is returned by OperatorByName when no operator is registered under the requested name.
var ErrUnknownOperator = errors.New("unknown mutation operator")

// Operator names, in the order they are returned by Operators.
const (
	// PassthroughOperatorName identifies PassthroughWithAddress.
	PassthroughOperatorName = "passthrough"
	// IncrementOperatorName identifies IncrementSaturating.
	IncrementOperatorName = "increment"
	// DecrementOperatorName identifies DecrementSaturating.
	DecrementOperatorName = "decrement"
	// ZeroOperatorName identifies ToZero.
	ZeroOperatorName = "zero"
	// MaxOperatorName identifies ToMax.
	MaxOperatorName = "max"
)

// Operator describes a named uint256 mutation with a uniform signature, so a caller can enumerate every mutation
// without knowing which of them care about the target address.
type Operator struct {
	// Name is a short, stable identifier for the operator.
	Name string

	// Apply performs the mutation. Operators which do not take an address ignore addr.
	Apply func(addr common.Address, value uint256.Int) uint256.Int
}

// ignoreAddress lifts a value-only mutation to the Operator signature.
func ignoreAddress(mutate func(uint256.Int) uint256.Int) func(common.Address, uint256.Int) uint256.Int {
	return func(_ common.Address, value uint256.Int) uint256.Int {
		return mutate(value)
	}
}

// operators is populated once at init and never written afterwards.
var operators = []Operator{
	{Name: PassthroughOperatorName, Apply: PassthroughWithAddress},
	{Name: IncrementOperatorName, Apply: ignoreAddress(IncrementSaturating)},
	{Name: DecrementOperatorName, Apply: ignoreAddress(DecrementSaturating)},
	{Name: ZeroOperatorName, Apply: ignoreAddress(ToZero)},
	{Name: MaxOperatorName, Apply: ignoreAddress(ToMax)},
}

// Operators returns every available operator. The returned slice is a copy and may be modified by the caller.
func Operators() []Operator {
	ops := make([]Operator, len(operators))
	copy(ops, operators)
	return ops
}

// OperatorByName looks up an operator by its Name. Returns ErrUnknownOperator if no operator matches.
func OperatorByName(name string) (Operator, error) {
	for _, op := range operators {
		if op.Name == name {
			return op, nil
		}
	}
	return Operator{}, errors.Wrapf(ErrUnknownOperator, "operator %q", name)
}

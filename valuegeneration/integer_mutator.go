package valuegeneration

import (
	"math/big"

	"github.com/crytic/medusa-mutators/logging"
	"github.com/crytic/medusa-mutators/mutators"
	"github.com/crytic/medusa-mutators/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidBitLength is returned when a bit length does not describe a Solidity unsigned integer type.
	ErrInvalidBitLength = errors.New("invalid unsigned integer bit length")

	// ErrIntegerOutOfRange is returned when an integer is nil or cannot be represented by the requested type.
	ErrIntegerOutOfRange = errors.New("integer out of range")
)

// MutateUint256 applies op to a uint256 ABI value. It is shorthand for MutateUnsignedInteger with a bit length of 256.
func MutateUint256(op mutators.Operator, addr common.Address, i *big.Int) (*big.Int, error) {
	return MutateUnsignedInteger(op, addr, i, 256)
}

// MutateUnsignedInteger applies op to an ABI value of type uint<bitLength>, as go-ethereum's ABI package represents
// it. The operator runs at 256-bit width and the result is saturated into the bounds of the narrower type, so that
// for example the max operator yields 255 for a uint8. The input is never modified.
// Returns the mutated copy, or an error if the bit length is invalid or the input does not fit the type.
func MutateUnsignedInteger(op mutators.Operator, addr common.Address, i *big.Int, bitLength int) (*big.Int, error) {
	if bitLength < 8 || bitLength > 256 || bitLength%8 != 0 {
		err := errors.Wrapf(ErrInvalidBitLength, "uint%d", bitLength)
		logger().Debug("Rejected integer mutation", err, logging.StructuredLogInfo{"operator": op.Name, "bitLength": bitLength})
		return nil, err
	}

	// Calculate our integer bounds and make sure the input respects them
	min, max := utils.GetUnsignedIntegerConstraints(bitLength)
	if i == nil || i.Cmp(min) < 0 || i.Cmp(max) > 0 {
		err := errors.Wrapf(ErrIntegerOutOfRange, "value %v for uint%d", i, bitLength)
		logger().Debug("Rejected integer mutation", err, logging.StructuredLogInfo{"operator": op.Name, "bitLength": bitLength})
		return nil, err
	}

	// The bounds check above guarantees the conversion cannot overflow.
	value := uint256.MustFromBig(i)
	mutated := op.Apply(addr, *value)

	return utils.SaturateIntegerToBounds(mutated.ToBig(), min, max), nil
}

// logger returns a sub-logger of the current global logger, so hosts may swap logging.GlobalLogger at any time.
func logger() *logging.Logger {
	return logging.GlobalLogger.NewSubLogger("module", logging.VALUE_GENERATION_SERVICE)
}

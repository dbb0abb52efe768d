package mutators

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Zero returns a copy of the minimum value representable by a uint256.Int.
func Zero() uint256.Int {
	return uint256.Int{}
}

// Max returns a copy of the maximum value representable by a uint256.Int (2^256 - 1).
func Max() uint256.Int {
	var max uint256.Int
	max.SetAllOne()
	return max
}

// PassthroughWithAddress takes an address and a value and returns the value unchanged. The address is accepted so
// the function matches the calling convention of address-aware mutations, but it has no effect on the result.
func PassthroughWithAddress(addr common.Address, value uint256.Int) uint256.Int {
	return value
}

// IncrementSaturating returns value + 1. If value is already the maximum, the maximum is returned.
func IncrementSaturating(value uint256.Int) uint256.Int {
	var result uint256.Int
	if _, overflow := result.AddOverflow(&value, uint256.NewInt(1)); overflow {
		return Max()
	}
	return result
}

// DecrementSaturating returns value - 1. If value is zero, zero is returned.
func DecrementSaturating(value uint256.Int) uint256.Int {
	var result uint256.Int
	if _, underflow := result.SubOverflow(&value, uint256.NewInt(1)); underflow {
		return Zero()
	}
	return result
}

// ToZero ignores its input and returns zero.
func ToZero(value uint256.Int) uint256.Int {
	return Zero()
}

// ToMax ignores its input and returns the maximum uint256 value.
func ToMax(value uint256.Int) uint256.Int {
	return Max()
}

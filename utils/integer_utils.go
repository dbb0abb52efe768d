package utils

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// SaturateIntegerToBounds takes a provided big integer and minimum/maximum bounds (inclusive) and clamps the
// integer into those bounds. Unlike a wrapping integer, a value past a bound sticks to that bound.
// Returns the clamped integer as a copy.
func SaturateIntegerToBounds(b *big.Int, min *big.Int, max *big.Int) *big.Int {
	if b.Cmp(min) < 0 {
		return new(big.Int).Set(min)
	}
	if b.Cmp(max) > 0 {
		return new(big.Int).Set(max)
	}

	// b is in range, return a copy of it
	return new(big.Int).Set(b)
}

// GetUnsignedIntegerConstraints takes a bit length for a prospective unsigned integer and determines the
// minimum/maximum value boundaries. Minimums and maximums are inclusive.
func GetUnsignedIntegerConstraints(bitLength int) (*big.Int, *big.Int) {
	// Set maximum as 2^bitLen - 1
	max := new(big.Int).Lsh(big.NewInt(1), uint(bitLength))
	max.Sub(max, big.NewInt(1))

	// Set minimum as zero
	return big.NewInt(0), max
}

// ParseUint256 parses a 256-bit unsigned integer from either a "0x"-prefixed hex string or a decimal string.
// Returns an error if the string is malformed or the value does not fit in 256 bits.
func ParseUint256(s string) (uint256.Int, error) {
	var (
		value *uint256.Int
		err   error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		// uint256 rejects leading zeros in hex input, so parse through big.Int instead.
		b, ok := new(big.Int).SetString(s[2:], 16)
		if !ok || b.Sign() < 0 {
			return uint256.Int{}, errors.Errorf("could not parse %q as a hex integer", s)
		}
		var overflow bool
		value, overflow = uint256.FromBig(b)
		if overflow {
			return uint256.Int{}, errors.Errorf("integer %q does not fit in 256 bits", s)
		}
	} else {
		value, err = uint256.FromDecimal(s)
		if err != nil {
			return uint256.Int{}, errors.Wrapf(err, "could not parse %q as a decimal integer", s)
		}
	}
	return *value, nil
}

package utils

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// HexStringToAddress converts a hex string (with or without the "0x" prefix) to a common.Address. Short inputs are
// left-padded with zeros. Returns the parsed address, or an error if the string is not valid hex or does not fit in
// an address.
func HexStringToAddress(s string) (*common.Address, error) {
	// Remove the 0x prefix, pad odd-length input to a full byte and decode the hex string into a byte array
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode address %q", s)
	}
	if len(b) > common.AddressLength {
		return nil, errors.Errorf("address %q is %d bytes long, expected at most %d", s, len(b), common.AddressLength)
	}

	// Parse the bytes as an address and return them.
	address := common.Address{}
	address.SetBytes(b)
	return &address, nil
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address implements the 32-byte account addresses carried in
// instruction account lists.
package address

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Size is the length of an address in bytes.
const Size = 32

var (
	// Empty is the zero address.
	Empty = Address{}

	ErrWrongSize = errors.New("address must be 32 bytes")
)

// Address identifies an account on the ledger.
type Address [Size]byte

// FromBytes parses an address from b, which must be exactly 32 bytes.
func FromBytes(b []byte) (Address, error) {
	if len(b) != Size {
		return Empty, fmt.Errorf("%w: got %d", ErrWrongSize, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// FromString parses a base58-encoded address.
func FromString(s string) (Address, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Empty, fmt.Errorf("parsing address: %w", err)
	}
	return FromBytes(b)
}

// Bytes returns the address as a fresh slice.
func (a Address) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, a[:])
	return b
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

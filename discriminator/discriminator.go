// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package discriminator derives the 8-byte tags that identify record and
// instruction kinds on the wire.
//
// A discriminator is the first 8 bytes of the sha256 hash of a namespaced
// string, fixed at protocol compile time. Two kinds sharing a tag is a
// schema-design error, asserted when types are registered, never at lookup.
package discriminator

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the length of a discriminator in bytes.
const Size = 8

var (
	// Zero marks unused buffer space. No kind may register it.
	Zero = Discriminator{}

	ErrWrongSize = errors.New("discriminator must be 8 bytes")
	ErrUnknown   = errors.New("unknown discriminator")
)

// Discriminator tags a record or instruction kind.
type Discriminator [Size]byte

// Derive returns the discriminator for a namespaced kind string, e.g.
// "wire:record:fee". Derivation is pure: the same namespace always yields
// the same tag.
func Derive(namespace string) Discriminator {
	h := sha256.Sum256([]byte(namespace))
	var d Discriminator
	copy(d[:], h[:Size])
	return d
}

// FromBytes parses a discriminator from the first 8 bytes of b. Any 8-byte
// value is syntactically valid; whether it resolves to a known kind is the
// registry's concern.
func FromBytes(b []byte) (Discriminator, error) {
	if len(b) < Size {
		return Zero, fmt.Errorf("%w: got %d", ErrWrongSize, len(b))
	}
	var d Discriminator
	copy(d[:], b[:Size])
	return d, nil
}

// Bytes returns the discriminator as a fresh slice.
func (d Discriminator) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// IsZero reports whether the discriminator is the zero tag marking unused
// buffer space.
func (d Discriminator) IsZero() bool {
	return d == Zero
}

func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

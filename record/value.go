// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package record maps discriminators to typed values and moves them in and
// out of TLV buffers.
package record

import (
	"errors"
	"fmt"
	"math"

	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/tlv"
	"github.com/luxfi/wire/utils/wrappers"
)

var ErrTypeMismatch = errors.New("value bytes do not match expected layout")

// Value is a typed record kind. Implementations pack and unpack their fields
// in declaration order against a little-endian Packer; Marshal and Unmarshal
// below are exact inverses for any value the packer accepts.
type Value interface {
	// Discriminator returns the kind's tag. It must be constant per type.
	Discriminator() discriminator.Discriminator

	PackValue(*wrappers.Packer)
	UnpackValue(*wrappers.Packer)
}

// Marshal encodes v into the byte string stored as a record's value field.
func Marshal(v Value) ([]byte, error) {
	p := wrappers.Packer{MaxSize: math.MaxInt32}
	v.PackValue(&p)
	if p.Errored() {
		return nil, fmt.Errorf("marshalling %s: %w", v.Discriminator(), p.Err)
	}
	return p.Bytes, nil
}

// Unmarshal decodes a record's value bytes into v. Every byte must be
// consumed; a short, long, or malformed payload fails with ErrTypeMismatch.
func Unmarshal(data []byte, v Value) error {
	p := wrappers.Packer{Bytes: data}
	v.UnpackValue(&p)
	if p.Errored() {
		return fmt.Errorf("%w: %s: %s", ErrTypeMismatch, v.Discriminator(), p.Err)
	}
	if p.Offset != len(data) {
		return fmt.Errorf("%w: %s: %d trailing bytes", ErrTypeMismatch, v.Discriminator(), len(data)-p.Offset)
	}
	return nil
}

// Get decodes the buffer's record of v's kind into v. Returns
// tlv.ErrNotFound when the buffer holds no such record.
func Get(b *tlv.Buffer, v Value) error {
	data, err := b.Get(v.Discriminator())
	if err != nil {
		return err
	}
	return Unmarshal(data, v)
}

// Set writes v into the buffer, replacing any record of the same kind.
func Set(b *tlv.Buffer, v Value) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	return b.Upsert(v.Discriminator(), data)
}

// Add writes v into the buffer, failing with tlv.ErrDuplicateRecord if a
// record of the same kind is already present.
func Add(b *tlv.Buffer, v Value) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	return b.Insert(v.Discriminator(), data)
}

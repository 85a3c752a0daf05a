// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package instruction serializes typed commands and their ordered account
// references into the unit a ledger program executes.
package instruction

import (
	"errors"
	"fmt"
	"math"

	"github.com/luxfi/wire/address"
	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/utils/wrappers"
)

var (
	ErrWrongDiscriminator = errors.New("instruction data carries a different discriminator")
	ErrShortData          = errors.New("instruction data shorter than a discriminator")
)

// AccountMeta references one account an instruction touches. The program
// indexes accounts positionally, so the order of a meta list is part of the
// wire contract: reordering changes meaning without any format error.
type AccountMeta struct {
	Address    address.Address
	IsSigner   bool
	IsWritable bool
}

// Meta builds an AccountMeta.
func Meta(addr address.Address, signer, writable bool) AccountMeta {
	return AccountMeta{
		Address:    addr,
		IsSigner:   signer,
		IsWritable: writable,
	}
}

// Args is a typed command's argument struct. PackArgs writes the fields in
// declaration order, little-endian, with no padding and no length prefixes;
// fixed-size arrays are written as exactly their elements.
type Args interface {
	// Discriminator returns the command's tag. It must be constant per type.
	Discriminator() discriminator.Discriminator

	PackArgs(*wrappers.Packer)
}

// ParsableArgs is implemented by argument structs that can also be read back
// from wire bytes, for indexers and tests.
type ParsableArgs interface {
	Args

	UnpackArgs(*wrappers.Packer)
}

// Instruction is a fully built command: the data bytes and the ordered
// account list submitted alongside them. The codec performs no validation of
// account identity; that is the executing program's concern.
type Instruction struct {
	ProgramID address.Address
	Accounts  []AccountMeta
	Data      []byte
}

// Build serializes args as discriminator || fields and lays out the account
// list: the declared accounts first, in exactly the given order, then any
// remaining accounts in caller order.
func Build(programID address.Address, args Args, declared []AccountMeta, remaining ...AccountMeta) (*Instruction, error) {
	d := args.Discriminator()
	p := wrappers.Packer{MaxSize: math.MaxInt32}
	p.PackFixedBytes(d[:])
	args.PackArgs(&p)
	if p.Errored() {
		return nil, fmt.Errorf("packing %s args: %w", d, p.Err)
	}

	accounts := make([]AccountMeta, 0, len(declared)+len(remaining))
	accounts = append(accounts, declared...)
	accounts = append(accounts, remaining...)

	return &Instruction{
		ProgramID: programID,
		Accounts:  accounts,
		Data:      p.Bytes,
	}, nil
}

// Parse decodes instruction data into args. The data's leading 8 bytes must
// equal args' discriminator and the argument fields must consume every
// remaining byte.
func Parse(data []byte, args ParsableArgs) error {
	if len(data) < discriminator.Size {
		return fmt.Errorf("%w: %d bytes", ErrShortData, len(data))
	}
	got, _ := discriminator.FromBytes(data)
	want := args.Discriminator()
	if got != want {
		return fmt.Errorf("%w: got %s, want %s", ErrWrongDiscriminator, got, want)
	}

	p := wrappers.Packer{Bytes: data, Offset: discriminator.Size}
	args.UnpackArgs(&p)
	if p.Errored() {
		return fmt.Errorf("unpacking %s args: %w", want, p.Err)
	}
	if p.Offset != len(data) {
		return fmt.Errorf("unpacking %s args: %d trailing bytes", want, len(data)-p.Offset)
	}
	return nil
}

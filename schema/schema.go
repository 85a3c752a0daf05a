// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package schema describes a program's record kinds and instruction kinds as
// data: discriminator namespaces, field layouts, and account lists. The
// schema is the single input binding generators consume; it performs no
// generation itself.
package schema

import (
	"errors"
	"fmt"

	"github.com/luxfi/wire/discriminator"
)

// Type is a field's wire type. All integers are little-endian.
type Type string

const (
	U8      Type = "u8"
	U16     Type = "u16"
	U32     Type = "u32"
	U64     Type = "u64"
	I64     Type = "i64"
	Bool    Type = "bool"
	Address Type = "address"
	// Bytes is a u32-length-prefixed byte string. Valid in record layouts
	// only; instruction arguments are strictly fixed-layout.
	Bytes Type = "bytes"
)

var (
	ErrUnknownType        = errors.New("unknown field type")
	ErrDuplicateName      = errors.New("duplicate name")
	ErrDiscriminatorClash = errors.New("discriminator collision")
	ErrVariableInArgs     = errors.New("variable-length field in instruction args")
)

// fixedSizes maps each fixed-layout type to its encoded length.
var fixedSizes = map[Type]int{
	U8:      1,
	U16:     2,
	U32:     4,
	U64:     8,
	I64:     8,
	Bool:    1,
	Address: 32,
}

// Field is one entry in a declaration-ordered layout.
type Field struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
	// ArrayLen, when nonzero, makes the field a fixed-size array of exactly
	// ArrayLen elements, emitted raw with no length prefix.
	ArrayLen int `json:"array_len,omitempty"`
}

// Account declares one position in an instruction's account list.
type Account struct {
	Name     string `json:"name"`
	Signer   bool   `json:"signer"`
	Writable bool   `json:"writable"`
}

// Instruction declares a command kind: its discriminator namespace, its
// fixed-layout argument fields, and its account list in execution order.
type Instruction struct {
	Name      string    `json:"name"`
	Namespace string    `json:"namespace"`
	Args      []Field   `json:"args,omitempty"`
	Accounts  []Account `json:"accounts,omitempty"`
}

// Discriminator returns the tag derived from the instruction's namespace.
func (i Instruction) Discriminator() discriminator.Discriminator {
	return discriminator.Derive(i.Namespace)
}

// Record declares a typed record kind stored in TLV buffers.
type Record struct {
	Name      string  `json:"name"`
	Namespace string  `json:"namespace"`
	Fields    []Field `json:"fields,omitempty"`
}

// Discriminator returns the tag derived from the record's namespace.
func (r Record) Discriminator() discriminator.Discriminator {
	return discriminator.Derive(r.Namespace)
}

// EncodedLen returns the record's encoded value length, or -1 if the layout
// contains a variable-length field.
func (r Record) EncodedLen() int {
	total := 0
	for _, f := range r.Fields {
		size, ok := fixedSizes[f.Type]
		if !ok {
			return -1
		}
		if f.ArrayLen > 0 {
			size *= f.ArrayLen
		}
		total += size
	}
	return total
}

// Program is a complete schema: every record and instruction kind a program
// understands.
type Program struct {
	Name         string        `json:"name"`
	Instructions []Instruction `json:"instructions,omitempty"`
	Records      []Record      `json:"records,omitempty"`
}

// Validate checks the schema the way a build step would: names are present
// and unique, field types are known, instruction args are fixed-layout, and
// no two kinds anywhere in the program derive the same discriminator.
// A collision is a schema-design error; nothing at runtime re-checks it.
func (p *Program) Validate() error {
	names := make(map[string]struct{})
	tags := make(map[discriminator.Discriminator]string)

	claim := func(name, namespace string) error {
		if name == "" || namespace == "" {
			return fmt.Errorf("kind %q: name and namespace are required", name)
		}
		if _, ok := names[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		names[name] = struct{}{}

		d := discriminator.Derive(namespace)
		if prev, ok := tags[d]; ok {
			return fmt.Errorf("%w: %s and %s both derive %s", ErrDiscriminatorClash, prev, name, d)
		}
		tags[d] = name
		return nil
	}

	for _, r := range p.Records {
		if err := claim(r.Name, r.Namespace); err != nil {
			return err
		}
		if err := checkFields(r.Name, r.Fields, true); err != nil {
			return err
		}
	}
	for _, i := range p.Instructions {
		if err := claim(i.Name, i.Namespace); err != nil {
			return err
		}
		if err := checkFields(i.Name, i.Args, false); err != nil {
			return err
		}
		accountNames := make(map[string]struct{}, len(i.Accounts))
		for _, a := range i.Accounts {
			if a.Name == "" {
				return fmt.Errorf("instruction %s: account name is required", i.Name)
			}
			if _, ok := accountNames[a.Name]; ok {
				return fmt.Errorf("%w: account %s in %s", ErrDuplicateName, a.Name, i.Name)
			}
			accountNames[a.Name] = struct{}{}
		}
	}
	return nil
}

func checkFields(kind string, fields []Field, allowVariable bool) error {
	names := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("kind %s: field name is required", kind)
		}
		if _, ok := names[f.Name]; ok {
			return fmt.Errorf("%w: field %s in %s", ErrDuplicateName, f.Name, kind)
		}
		names[f.Name] = struct{}{}

		if _, fixed := fixedSizes[f.Type]; !fixed {
			if f.Type != Bytes {
				return fmt.Errorf("%w: %s.%s is %q", ErrUnknownType, kind, f.Name, f.Type)
			}
			if !allowVariable {
				return fmt.Errorf("%w: %s.%s", ErrVariableInArgs, kind, f.Name)
			}
			if f.ArrayLen > 0 {
				return fmt.Errorf("kind %s: field %s: bytes cannot be a fixed array", kind, f.Name)
			}
		}
	}
	return nil
}

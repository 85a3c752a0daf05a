// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validProgram() *Program {
	return &Program{
		Name: "example",
		Records: []Record{
			{
				Name:      "state",
				Namespace: "wire:example:state",
				Fields: []Field{
					{Name: "owner", Type: Address},
					{Name: "balance", Type: U64},
					{Name: "memo", Type: Bytes},
				},
			},
		},
		Instructions: []Instruction{
			{
				Name:      "transfer",
				Namespace: "wire:example:ix:transfer",
				Args: []Field{
					{Name: "amount", Type: U64},
					{Name: "seed", Type: U8, ArrayLen: 32},
				},
				Accounts: []Account{
					{Name: "from", Signer: true, Writable: true},
					{Name: "to", Writable: true},
				},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	require := require.New(t)
	require.NoError(validProgram().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Program)
		expectError error
	}{
		{
			name: "discriminator collision",
			mutate: func(p *Program) {
				p.Instructions[0].Namespace = p.Records[0].Namespace
			},
			expectError: ErrDiscriminatorClash,
		},
		{
			name: "duplicate kind name",
			mutate: func(p *Program) {
				p.Instructions[0].Name = "state"
			},
			expectError: ErrDuplicateName,
		},
		{
			name: "duplicate field name",
			mutate: func(p *Program) {
				p.Records[0].Fields[1].Name = "owner"
			},
			expectError: ErrDuplicateName,
		},
		{
			name: "duplicate account name",
			mutate: func(p *Program) {
				p.Instructions[0].Accounts[1].Name = "from"
			},
			expectError: ErrDuplicateName,
		},
		{
			name: "unknown field type",
			mutate: func(p *Program) {
				p.Records[0].Fields[0].Type = "u128"
			},
			expectError: ErrUnknownType,
		},
		{
			name: "variable-length instruction arg",
			mutate: func(p *Program) {
				p.Instructions[0].Args[0].Type = Bytes
			},
			expectError: ErrVariableInArgs,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProgram()
			tt.mutate(p)
			require.ErrorIs(t, p.Validate(), tt.expectError)
		})
	}
}

func TestValidateRequiredNames(t *testing.T) {
	require := require.New(t)

	p := validProgram()
	p.Records[0].Namespace = ""
	require.Error(p.Validate())

	p = validProgram()
	p.Instructions[0].Accounts[0].Name = ""
	require.Error(p.Validate())
}

func TestEncodedLen(t *testing.T) {
	require := require.New(t)

	fixed := Record{
		Fields: []Field{
			{Name: "a", Type: U8},
			{Name: "b", Type: U16},
			{Name: "c", Type: U32},
			{Name: "d", Type: U64},
			{Name: "e", Type: I64},
			{Name: "f", Type: Bool},
			{Name: "g", Type: Address},
			{Name: "h", Type: U8, ArrayLen: 4},
		},
	}
	require.Equal(1+2+4+8+8+1+32+4, fixed.EncodedLen())

	variable := Record{
		Fields: []Field{
			{Name: "a", Type: U64},
			{Name: "b", Type: Bytes},
		},
	}
	require.Equal(-1, variable.EncodedLen())
}

func TestDiscriminators(t *testing.T) {
	require := require.New(t)

	p := validProgram()
	require.Equal(p.Records[0].Discriminator(), p.Records[0].Discriminator())
	require.NotEqual(p.Records[0].Discriminator(), p.Instructions[0].Discriminator())
}

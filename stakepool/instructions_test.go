// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakepool

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/wire/instruction"
)

func TestDepositSolInstruction(t *testing.T) {
	require := require.New(t)

	accounts := DepositSolAccounts{
		StakePool:          testAddress(1),
		WithdrawAuthority:  testAddress(2),
		ReserveStake:       testAddress(3),
		Funder:             testAddress(4),
		DestinationAccount: testAddress(5),
		ManagerFeeAccount:  testAddress(6),
		PoolMint:           testAddress(7),
		TokenProgram:       testAddress(8),
	}
	ix, err := NewDepositSolInstruction(
		testAddress(0xEE),
		&DepositSolArgs{Lamports: 5_000_000_000},
		accounts,
	)
	require.NoError(err)

	require.Equal(DepositSolDiscriminator.Bytes(), ix.Data[:8])
	require.Equal(uint64(5_000_000_000), binary.LittleEndian.Uint64(ix.Data[8:]))
	require.Len(ix.Data, 16)

	// Positional contract: the program reads accounts by index.
	require.Equal([]instruction.AccountMeta{
		instruction.Meta(accounts.StakePool, false, true),
		instruction.Meta(accounts.WithdrawAuthority, false, false),
		instruction.Meta(accounts.ReserveStake, false, true),
		instruction.Meta(accounts.Funder, true, true),
		instruction.Meta(accounts.DestinationAccount, false, true),
		instruction.Meta(accounts.ManagerFeeAccount, false, true),
		instruction.Meta(accounts.PoolMint, false, true),
		instruction.Meta(accounts.TokenProgram, false, false),
	}, ix.Accounts)
}

func TestDepositSolRemainingAccounts(t *testing.T) {
	require := require.New(t)

	referral := instruction.Meta(testAddress(0xAA), false, true)
	extra := instruction.Meta(testAddress(0xBB), false, false)

	ix, err := NewDepositSolInstruction(
		testAddress(0xEE),
		&DepositSolArgs{Lamports: 1},
		DepositSolAccounts{},
		referral,
		extra,
	)
	require.NoError(err)

	require.Len(ix.Accounts, 10)
	require.Equal(referral, ix.Accounts[8])
	require.Equal(extra, ix.Accounts[9])
}

func TestInitializeInstruction(t *testing.T) {
	require := require.New(t)

	args := &InitializeArgs{Fees: testFees(), MaxValidators: 2000}
	ix, err := NewInitializeInstruction(
		testAddress(0xEE),
		args,
		InitializeAccounts{
			StakePool: testAddress(1),
			Manager:   testAddress(2),
		},
	)
	require.NoError(err)

	// discriminator + fees (49) + max_validators (4)
	require.Len(ix.Data, 8+49+4)
	require.Equal(uint32(2000), binary.LittleEndian.Uint32(ix.Data[8+49:]))
	require.Len(ix.Accounts, 8)
	require.True(ix.Accounts[0].IsWritable)
	require.True(ix.Accounts[1].IsSigner)

	// Args parse back byte-for-byte.
	var parsed InitializeArgs
	require.NoError(instruction.Parse(ix.Data, &parsed))
	require.Equal(*args, parsed)
}

func TestWithdrawSolInstruction(t *testing.T) {
	require := require.New(t)

	ix, err := NewWithdrawSolInstruction(
		testAddress(0xEE),
		&WithdrawSolArgs{PoolTokens: 77},
		WithdrawSolAccounts{TransferAuthority: testAddress(3)},
	)
	require.NoError(err)

	require.Len(ix.Accounts, 9)
	require.Equal(testAddress(3), ix.Accounts[2].Address)
	require.True(ix.Accounts[2].IsSigner)

	var parsed WithdrawSolArgs
	require.NoError(instruction.Parse(ix.Data, &parsed))
	require.Equal(uint64(77), parsed.PoolTokens)
}

func TestSetFeesInstruction(t *testing.T) {
	require := require.New(t)

	args := &SetFeesArgs{Fees: testFees()}
	ix, err := NewSetFeesInstruction(
		testAddress(0xEE),
		args,
		SetFeesAccounts{StakePool: testAddress(1), Manager: testAddress(2)},
	)
	require.NoError(err)

	require.Len(ix.Data, 8+49)
	require.Len(ix.Accounts, 2)

	var parsed SetFeesArgs
	require.NoError(instruction.Parse(ix.Data, &parsed))
	require.Equal(*args, parsed)
}

// TestInstructionDiscriminatorsDistinct asserts registry-wide uniqueness
// across every record and instruction kind the program declares.
func TestInstructionDiscriminatorsDistinct(t *testing.T) {
	require := require.New(t)

	program := Schema()
	require.NoError(program.Validate())
	require.Len(program.Instructions, 4)
	require.Len(program.Records, 4)
}

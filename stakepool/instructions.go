// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakepool

import (
	"github.com/luxfi/wire/address"
	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/instruction"
	"github.com/luxfi/wire/utils/wrappers"
)

var (
	InitializeDiscriminator  = discriminator.Derive("wire:stake_pool:ix:initialize")
	DepositSolDiscriminator  = discriminator.Derive("wire:stake_pool:ix:deposit_sol")
	WithdrawSolDiscriminator = discriminator.Derive("wire:stake_pool:ix:withdraw_sol")
	SetFeesDiscriminator     = discriminator.Derive("wire:stake_pool:ix:set_fees")
)

// InitializeArgs configures a new pool. MaxValidators caps the validator
// list; the list's account is created with capacity
// ValidatorListSize(MaxValidators).
type InitializeArgs struct {
	Fees          Fees
	MaxValidators uint32
}

var _ instruction.ParsableArgs = (*InitializeArgs)(nil)

func (*InitializeArgs) Discriminator() discriminator.Discriminator {
	return InitializeDiscriminator
}

func (a *InitializeArgs) PackArgs(p *wrappers.Packer) {
	a.Fees.PackValue(p)
	p.PackInt(a.MaxValidators)
}

func (a *InitializeArgs) UnpackArgs(p *wrappers.Packer) {
	a.Fees.UnpackValue(p)
	a.MaxValidators = p.UnpackInt()
}

// InitializeAccounts lists the accounts Initialize touches, in execution
// order.
type InitializeAccounts struct {
	StakePool         address.Address
	Manager           address.Address
	Staker            address.Address
	ValidatorList     address.Address
	ReserveStake      address.Address
	PoolMint          address.Address
	ManagerFeeAccount address.Address
	TokenProgram      address.Address
}

// NewInitializeInstruction builds the instruction that creates a pool.
func NewInitializeInstruction(
	programID address.Address,
	args *InitializeArgs,
	accounts InitializeAccounts,
	remaining ...instruction.AccountMeta,
) (*instruction.Instruction, error) {
	declared := []instruction.AccountMeta{
		instruction.Meta(accounts.StakePool, false, true),
		instruction.Meta(accounts.Manager, true, false),
		instruction.Meta(accounts.Staker, false, false),
		instruction.Meta(accounts.ValidatorList, false, true),
		instruction.Meta(accounts.ReserveStake, false, false),
		instruction.Meta(accounts.PoolMint, false, true),
		instruction.Meta(accounts.ManagerFeeAccount, false, true),
		instruction.Meta(accounts.TokenProgram, false, false),
	}
	return instruction.Build(programID, args, declared, remaining...)
}

// DepositSolArgs funds the reserve in exchange for pool tokens.
type DepositSolArgs struct {
	Lamports uint64
}

var _ instruction.ParsableArgs = (*DepositSolArgs)(nil)

func (*DepositSolArgs) Discriminator() discriminator.Discriminator {
	return DepositSolDiscriminator
}

func (a *DepositSolArgs) PackArgs(p *wrappers.Packer) {
	p.PackLong(a.Lamports)
}

func (a *DepositSolArgs) UnpackArgs(p *wrappers.Packer) {
	a.Lamports = p.UnpackLong()
}

// DepositSolAccounts lists the accounts DepositSol touches, in execution
// order.
type DepositSolAccounts struct {
	StakePool          address.Address
	WithdrawAuthority  address.Address
	ReserveStake       address.Address
	Funder             address.Address
	DestinationAccount address.Address
	ManagerFeeAccount  address.Address
	PoolMint           address.Address
	TokenProgram       address.Address
}

// NewDepositSolInstruction builds a deposit of lamports into the reserve.
func NewDepositSolInstruction(
	programID address.Address,
	args *DepositSolArgs,
	accounts DepositSolAccounts,
	remaining ...instruction.AccountMeta,
) (*instruction.Instruction, error) {
	declared := []instruction.AccountMeta{
		instruction.Meta(accounts.StakePool, false, true),
		instruction.Meta(accounts.WithdrawAuthority, false, false),
		instruction.Meta(accounts.ReserveStake, false, true),
		instruction.Meta(accounts.Funder, true, true),
		instruction.Meta(accounts.DestinationAccount, false, true),
		instruction.Meta(accounts.ManagerFeeAccount, false, true),
		instruction.Meta(accounts.PoolMint, false, true),
		instruction.Meta(accounts.TokenProgram, false, false),
	}
	return instruction.Build(programID, args, declared, remaining...)
}

// WithdrawSolArgs burns pool tokens in exchange for lamports from the
// reserve.
type WithdrawSolArgs struct {
	PoolTokens uint64
}

var _ instruction.ParsableArgs = (*WithdrawSolArgs)(nil)

func (*WithdrawSolArgs) Discriminator() discriminator.Discriminator {
	return WithdrawSolDiscriminator
}

func (a *WithdrawSolArgs) PackArgs(p *wrappers.Packer) {
	p.PackLong(a.PoolTokens)
}

func (a *WithdrawSolArgs) UnpackArgs(p *wrappers.Packer) {
	a.PoolTokens = p.UnpackLong()
}

// WithdrawSolAccounts lists the accounts WithdrawSol touches, in execution
// order.
type WithdrawSolAccounts struct {
	StakePool         address.Address
	WithdrawAuthority address.Address
	TransferAuthority address.Address
	SourceAccount     address.Address
	ReserveStake      address.Address
	Destination       address.Address
	ManagerFeeAccount address.Address
	PoolMint          address.Address
	TokenProgram      address.Address
}

// NewWithdrawSolInstruction builds a withdrawal from the reserve.
func NewWithdrawSolInstruction(
	programID address.Address,
	args *WithdrawSolArgs,
	accounts WithdrawSolAccounts,
	remaining ...instruction.AccountMeta,
) (*instruction.Instruction, error) {
	declared := []instruction.AccountMeta{
		instruction.Meta(accounts.StakePool, false, true),
		instruction.Meta(accounts.WithdrawAuthority, false, false),
		instruction.Meta(accounts.TransferAuthority, true, false),
		instruction.Meta(accounts.SourceAccount, false, true),
		instruction.Meta(accounts.ReserveStake, false, true),
		instruction.Meta(accounts.Destination, false, true),
		instruction.Meta(accounts.ManagerFeeAccount, false, true),
		instruction.Meta(accounts.PoolMint, false, true),
		instruction.Meta(accounts.TokenProgram, false, false),
	}
	return instruction.Build(programID, args, declared, remaining...)
}

// SetFeesArgs replaces the pool's fee schedule.
type SetFeesArgs struct {
	Fees Fees
}

var _ instruction.ParsableArgs = (*SetFeesArgs)(nil)

func (*SetFeesArgs) Discriminator() discriminator.Discriminator {
	return SetFeesDiscriminator
}

func (a *SetFeesArgs) PackArgs(p *wrappers.Packer) {
	a.Fees.PackValue(p)
}

func (a *SetFeesArgs) UnpackArgs(p *wrappers.Packer) {
	a.Fees.UnpackValue(p)
}

// SetFeesAccounts lists the accounts SetFees touches, in execution order.
type SetFeesAccounts struct {
	StakePool address.Address
	Manager   address.Address
}

// NewSetFeesInstruction builds the manager-only fee update.
func NewSetFeesInstruction(
	programID address.Address,
	args *SetFeesArgs,
	accounts SetFeesAccounts,
	remaining ...instruction.AccountMeta,
) (*instruction.Instruction, error) {
	declared := []instruction.AccountMeta{
		instruction.Meta(accounts.StakePool, false, true),
		instruction.Meta(accounts.Manager, true, false),
	}
	return instruction.Build(programID, args, declared, remaining...)
}

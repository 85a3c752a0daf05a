// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakepool

import "github.com/luxfi/wire/schema"

// Schema returns the stake pool program as generation input. The hand-written
// types in this package and any generated bindings encode identically; the
// schema is what external SDK generators consume.
func Schema() *schema.Program {
	feeFields := func(prefix string) []schema.Field {
		return []schema.Field{
			{Name: prefix + "_denominator", Type: schema.U64},
			{Name: prefix + "_numerator", Type: schema.U64},
		}
	}
	feesFields := append(feeFields("epoch"), append(feeFields("deposit"), feeFields("withdrawal")...)...)
	feesFields = append(feesFields, schema.Field{Name: "referral_cut", Type: schema.U8})

	return &schema.Program{
		Name: "stake_pool",
		Records: []schema.Record{
			{
				Name:      "config",
				Namespace: "wire:stake_pool:config",
				Fields: []schema.Field{
					{Name: "manager", Type: schema.Address},
					{Name: "staker", Type: schema.Address},
					{Name: "validator_list", Type: schema.Address},
					{Name: "reserve_stake", Type: schema.Address},
					{Name: "pool_mint", Type: schema.Address},
					{Name: "manager_fee_account", Type: schema.Address},
				},
			},
			{
				Name:      "fees",
				Namespace: "wire:stake_pool:fees",
				Fields:    feesFields,
			},
			{
				Name:      "lockup",
				Namespace: "wire:stake_pool:lockup",
				Fields: []schema.Field{
					{Name: "unix_timestamp", Type: schema.I64},
					{Name: "epoch", Type: schema.U64},
					{Name: "custodian", Type: schema.Address},
				},
			},
			{
				Name:      "balances",
				Namespace: "wire:stake_pool:balances",
				Fields: []schema.Field{
					{Name: "total_lamports", Type: schema.U64},
					{Name: "pool_token_supply", Type: schema.U64},
					{Name: "last_update_epoch", Type: schema.U64},
				},
			},
		},
		// The validator list record carries a count-prefixed slice of entries;
		// the schema language only describes fixed layouts, so ValidatorList
		// stays hand-written in state.go.
		Instructions: []schema.Instruction{
			{
				Name:      "initialize",
				Namespace: "wire:stake_pool:ix:initialize",
				Args:      append(append([]schema.Field{}, feesFields...), schema.Field{Name: "max_validators", Type: schema.U32}),
				Accounts: []schema.Account{
					{Name: "stake_pool", Writable: true},
					{Name: "manager", Signer: true},
					{Name: "staker"},
					{Name: "validator_list", Writable: true},
					{Name: "reserve_stake"},
					{Name: "pool_mint", Writable: true},
					{Name: "manager_fee_account", Writable: true},
					{Name: "token_program"},
				},
			},
			{
				Name:      "deposit_sol",
				Namespace: "wire:stake_pool:ix:deposit_sol",
				Args: []schema.Field{
					{Name: "lamports", Type: schema.U64},
				},
				Accounts: []schema.Account{
					{Name: "stake_pool", Writable: true},
					{Name: "withdraw_authority"},
					{Name: "reserve_stake", Writable: true},
					{Name: "funder", Signer: true, Writable: true},
					{Name: "destination_account", Writable: true},
					{Name: "manager_fee_account", Writable: true},
					{Name: "pool_mint", Writable: true},
					{Name: "token_program"},
				},
			},
			{
				Name:      "withdraw_sol",
				Namespace: "wire:stake_pool:ix:withdraw_sol",
				Args: []schema.Field{
					{Name: "pool_tokens", Type: schema.U64},
				},
				Accounts: []schema.Account{
					{Name: "stake_pool", Writable: true},
					{Name: "withdraw_authority"},
					{Name: "transfer_authority", Signer: true},
					{Name: "source_account", Writable: true},
					{Name: "reserve_stake", Writable: true},
					{Name: "destination", Writable: true},
					{Name: "manager_fee_account", Writable: true},
					{Name: "pool_mint", Writable: true},
					{Name: "token_program"},
				},
			},
			{
				Name:      "set_fees",
				Namespace: "wire:stake_pool:ix:set_fees",
				Args:      feesFields,
				Accounts: []schema.Account{
					{Name: "stake_pool", Writable: true},
					{Name: "manager", Signer: true},
				},
			},
		},
	}
}

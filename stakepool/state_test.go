// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakepool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/wire/address"
	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/record"
	"github.com/luxfi/wire/tlv"
)

func testAddress(fill byte) address.Address {
	var a address.Address
	for i := range a {
		a[i] = fill
	}
	return a
}

func testFees() Fees {
	return Fees{
		Epoch:       Fee{Numerator: 1, Denominator: 100},
		Deposit:     Fee{Numerator: 3, Denominator: 1000},
		Withdrawal:  Fee{Numerator: 5, Denominator: 1000},
		ReferralCut: 50,
	}
}

func TestRecordRoundTrips(t *testing.T) {
	custodian := testAddress(7)
	vote := testAddress(9)

	tests := []struct {
		name string
		in   record.Value
		out  record.Value
	}{
		{
			name: "config",
			in: &Config{
				Manager:           testAddress(1),
				Staker:            testAddress(2),
				ValidatorList:     testAddress(3),
				ReserveStake:      testAddress(4),
				PoolMint:          testAddress(5),
				ManagerFeeAccount: testAddress(6),
			},
			out: &Config{},
		},
		{
			name: "fees",
			in: &Fees{
				Epoch:       Fee{Numerator: 1, Denominator: 100},
				Deposit:     Fee{Numerator: 3, Denominator: 1000},
				Withdrawal:  Fee{Numerator: 5, Denominator: 1000},
				ReferralCut: 50,
			},
			out: &Fees{},
		},
		{
			name: "lockup",
			in:   &Lockup{UnixTimestamp: -1755000000, Epoch: 512, Custodian: custodian},
			out:  &Lockup{},
		},
		{
			name: "balances",
			in:   &Balances{TotalLamports: 1 << 50, PoolTokenSupply: 1 << 49, LastUpdateEpoch: 700},
			out:  &Balances{},
		},
		{
			name: "preferred validator present",
			in:   &PreferredValidator{VoteAccount: &vote},
			out:  &PreferredValidator{},
		},
		{
			name: "preferred validator absent",
			in:   &PreferredValidator{},
			out:  &PreferredValidator{VoteAccount: &vote},
		},
		{
			name: "validator list empty",
			in:   &ValidatorList{MaxValidators: 100},
			out:  &ValidatorList{},
		},
		{
			name: "validator list",
			in: &ValidatorList{
				MaxValidators: 100,
				Validators: []ValidatorStakeInfo{
					{
						ActiveStakeLamports:    123456789,
						TransientStakeLamports: 42,
						LastUpdateEpoch:        699,
						TransientSeedSuffix:    3,
						ValidatorSeedSuffix:    1,
						Status:                 StakeDeactivatingTransient,
						VoteAccount:            vote,
					},
					{
						ActiveStakeLamports: 5,
						LastUpdateEpoch:     699,
						Status:              StakeActive,
						VoteAccount:         custodian,
					},
				},
			},
			out: &ValidatorList{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			data, err := record.Marshal(tt.in)
			require.NoError(err)
			require.NoError(record.Unmarshal(data, tt.out))
			require.Equal(tt.in, tt.out)
		})
	}
}

// TestFeesLayout pins the fees record's exact encoding: three fees as
// denominator/numerator u64-LE pairs, then the referral cut byte.
func TestFeesLayout(t *testing.T) {
	require := require.New(t)

	require.Equal(
		discriminator.Discriminator{0xf0, 0xf6, 0x45, 0x33, 0xaa, 0x8c, 0xc8, 0x1f},
		FeesDiscriminator,
	)

	data, err := record.Marshal(&Fees{
		Epoch:       Fee{Numerator: 1, Denominator: 100},
		ReferralCut: 50,
	})
	require.NoError(err)
	require.Len(data, 49)
	require.Equal(byte(100), data[0])
	require.Equal(byte(1), data[8])
	require.Equal(byte(50), data[48])
}

func TestPreferredValidatorLengths(t *testing.T) {
	require := require.New(t)

	absent, err := record.Marshal(&PreferredValidator{})
	require.NoError(err)
	require.Len(absent, 1)

	vote := testAddress(9)
	present, err := record.Marshal(&PreferredValidator{VoteAccount: &vote})
	require.NoError(err)
	require.Len(present, 33)

	// A truncated present payload is corruption, not absence.
	var out PreferredValidator
	require.ErrorIs(record.Unmarshal(present[:20], &out), record.ErrTypeMismatch)
}

// TestPoolAccountLifecycle drives a pool state account the way the program
// does: initialize the records, mutate some, reload from the raw image.
func TestPoolAccountLifecycle(t *testing.T) {
	require := require.New(t)

	account := tlv.New(512)
	require.NoError(record.Add(account, &Config{Manager: testAddress(1), PoolMint: testAddress(5)}))
	require.NoError(record.Add(account, &Fees{Epoch: Fee{Numerator: 1, Denominator: 100}}))
	require.NoError(record.Add(account, &Balances{}))

	// Epoch update grows nothing: same-size overwrite in place.
	used := account.Used()
	require.NoError(record.Set(account, &Balances{TotalLamports: 10, PoolTokenSupply: 10, LastUpdateEpoch: 1}))
	require.Equal(used, account.Used())

	// A later protocol version adds a record old readers will skip.
	vote := testAddress(9)
	require.NoError(record.Set(account, &PreferredValidator{VoteAccount: &vote}))

	reloaded, err := tlv.Wrap(account.Bytes())
	require.NoError(err)

	values, err := Registry.DecodeAll(reloaded)
	require.NoError(err)
	require.Len(values, 4)

	var balances Balances
	require.NoError(record.Get(reloaded, &balances))
	require.Equal(uint64(1), balances.LastUpdateEpoch)
}

// TestValidatorListCapacity sizes a validator list account up front and checks
// that a list filled to MaxValidators fits exactly while one more entry does not.
func TestValidatorListCapacity(t *testing.T) {
	require := require.New(t)

	const maxValidators = 4
	account := tlv.New(ValidatorListSize(maxValidators))

	list := &ValidatorList{MaxValidators: maxValidators}
	require.NoError(record.Add(account, list))

	for i := 0; i < maxValidators; i++ {
		list.Validators = append(list.Validators, ValidatorStakeInfo{
			ActiveStakeLamports: uint64(i + 1),
			VoteAccount:         testAddress(byte(i + 1)),
		})
		require.NoError(record.Set(account, list))
	}
	require.Zero(account.Free())

	list.Validators = append(list.Validators, ValidatorStakeInfo{VoteAccount: testAddress(0xff)})
	require.ErrorIs(record.Set(account, list), tlv.ErrBufferTooSmall)

	// The failed write left the full list intact.
	var reloaded ValidatorList
	require.NoError(record.Get(account, &reloaded))
	require.Len(reloaded.Validators, maxValidators)
}

// TestValidatorListCountGuard rejects a count that promises more entries than
// the value bytes carry.
func TestValidatorListCountGuard(t *testing.T) {
	require := require.New(t)

	data, err := record.Marshal(&ValidatorList{
		MaxValidators: 8,
		Validators:    []ValidatorStakeInfo{{VoteAccount: testAddress(1)}},
	})
	require.NoError(err)

	// Inflate the count without supplying the entries.
	data[4] = 200
	var out ValidatorList
	require.ErrorIs(record.Unmarshal(data, &out), record.ErrTypeMismatch)
}

func TestRegistryResolvesAllKinds(t *testing.T) {
	require := require.New(t)

	for _, d := range []discriminator.Discriminator{
		ConfigDiscriminator,
		FeesDiscriminator,
		LockupDiscriminator,
		BalancesDiscriminator,
		PreferredValidatorDiscriminator,
		ValidatorListDiscriminator,
	} {
		_, err := Registry.Resolve(d)
		require.NoError(err)
	}

	_, err := Registry.Resolve(discriminator.Derive("wire:test:alpha"))
	require.ErrorIs(err, discriminator.ErrUnknown)
}

func TestSchemaMatchesTypes(t *testing.T) {
	require := require.New(t)

	program := Schema()
	require.NoError(program.Validate())

	// The schema's discriminators are the hand-written ones.
	wantTags := map[string]discriminator.Discriminator{
		"config":   ConfigDiscriminator,
		"fees":     FeesDiscriminator,
		"lockup":   LockupDiscriminator,
		"balances": BalancesDiscriminator,
	}
	wantLens := map[string]record.Value{
		"config":   &Config{},
		"fees":     &Fees{},
		"lockup":   &Lockup{},
		"balances": &Balances{},
	}
	for _, r := range program.Records {
		want, ok := wantTags[r.Name]
		require.True(ok, r.Name)
		require.Equal(want, r.Discriminator(), r.Name)

		// Fixed-size schema layouts agree with the hand-written encoders.
		data, err := record.Marshal(wantLens[r.Name])
		require.NoError(err)
		require.Equal(r.EncodedLen(), len(data), r.Name)
	}

	wantIx := map[string]discriminator.Discriminator{
		"initialize":   InitializeDiscriminator,
		"deposit_sol":  DepositSolDiscriminator,
		"withdraw_sol": WithdrawSolDiscriminator,
		"set_fees":     SetFeesDiscriminator,
	}
	for _, i := range program.Instructions {
		want, ok := wantIx[i.Name]
		require.True(ok, i.Name)
		require.Equal(want, i.Discriminator(), i.Name)
	}
}

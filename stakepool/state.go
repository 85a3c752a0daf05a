// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stakepool defines the record kinds and instructions of the stake
// pool program. Pool state lives in one fixed-size account as a TLV record
// chain, so fields added in later protocol versions are skipped, not
// rejected, by older readers.
package stakepool

import (
	"errors"

	"github.com/luxfi/wire/address"
	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/record"
	"github.com/luxfi/wire/utils/wrappers"
)

// Discriminator namespaces are part of the wire protocol. Renaming one is a
// breaking change.
var (
	ConfigDiscriminator             = discriminator.Derive("wire:stake_pool:config")
	FeesDiscriminator               = discriminator.Derive("wire:stake_pool:fees")
	LockupDiscriminator             = discriminator.Derive("wire:stake_pool:lockup")
	BalancesDiscriminator           = discriminator.Derive("wire:stake_pool:balances")
	PreferredValidatorDiscriminator = discriminator.Derive("wire:stake_pool:preferred_validator")
	ValidatorListDiscriminator      = discriminator.Derive("wire:stake_pool:validator_list")
)

var errValidatorCount = errors.New("validator count exceeds value bytes")

// Registry resolves every record kind the stake pool program stores.
var Registry = record.NewRegistry()

func init() {
	Registry.MustRegister(func() record.Value { return &Config{} })
	Registry.MustRegister(func() record.Value { return &Fees{} })
	Registry.MustRegister(func() record.Value { return &Lockup{} })
	Registry.MustRegister(func() record.Value { return &Balances{} })
	Registry.MustRegister(func() record.Value { return &PreferredValidator{} })
	Registry.MustRegister(func() record.Value { return &ValidatorList{} })
}

// Fee is a proportion assessed by the pool, numerator over denominator.
// The wire order is denominator first.
type Fee struct {
	Numerator   uint64
	Denominator uint64
}

func (f *Fee) packInto(p *wrappers.Packer) {
	p.PackLong(f.Denominator)
	p.PackLong(f.Numerator)
}

func (f *Fee) unpackFrom(p *wrappers.Packer) {
	f.Denominator = p.UnpackLong()
	f.Numerator = p.UnpackLong()
}

// Config holds the pool's authorities and token accounts.
type Config struct {
	Manager           address.Address
	Staker            address.Address
	ValidatorList     address.Address
	ReserveStake      address.Address
	PoolMint          address.Address
	ManagerFeeAccount address.Address
}

var _ record.Value = (*Config)(nil)

func (*Config) Discriminator() discriminator.Discriminator {
	return ConfigDiscriminator
}

func (c *Config) PackValue(p *wrappers.Packer) {
	p.PackFixedBytes(c.Manager[:])
	p.PackFixedBytes(c.Staker[:])
	p.PackFixedBytes(c.ValidatorList[:])
	p.PackFixedBytes(c.ReserveStake[:])
	p.PackFixedBytes(c.PoolMint[:])
	p.PackFixedBytes(c.ManagerFeeAccount[:])
}

func (c *Config) UnpackValue(p *wrappers.Packer) {
	copy(c.Manager[:], p.UnpackFixedBytes(address.Size))
	copy(c.Staker[:], p.UnpackFixedBytes(address.Size))
	copy(c.ValidatorList[:], p.UnpackFixedBytes(address.Size))
	copy(c.ReserveStake[:], p.UnpackFixedBytes(address.Size))
	copy(c.PoolMint[:], p.UnpackFixedBytes(address.Size))
	copy(c.ManagerFeeAccount[:], p.UnpackFixedBytes(address.Size))
}

// Fees holds every fee schedule the pool assesses.
type Fees struct {
	Epoch       Fee
	Deposit     Fee
	Withdrawal  Fee
	ReferralCut byte
}

var _ record.Value = (*Fees)(nil)

func (*Fees) Discriminator() discriminator.Discriminator {
	return FeesDiscriminator
}

func (f *Fees) PackValue(p *wrappers.Packer) {
	f.Epoch.packInto(p)
	f.Deposit.packInto(p)
	f.Withdrawal.packInto(p)
	p.PackByte(f.ReferralCut)
}

func (f *Fees) UnpackValue(p *wrappers.Packer) {
	f.Epoch.unpackFrom(p)
	f.Deposit.unpackFrom(p)
	f.Withdrawal.unpackFrom(p)
	f.ReferralCut = p.UnpackByte()
}

// Lockup keeps withdrawals frozen until a time or epoch is reached, unless
// the custodian signs.
type Lockup struct {
	UnixTimestamp int64
	Epoch         uint64
	Custodian     address.Address
}

var _ record.Value = (*Lockup)(nil)

func (*Lockup) Discriminator() discriminator.Discriminator {
	return LockupDiscriminator
}

func (l *Lockup) PackValue(p *wrappers.Packer) {
	p.PackLong(uint64(l.UnixTimestamp))
	p.PackLong(l.Epoch)
	p.PackFixedBytes(l.Custodian[:])
}

func (l *Lockup) UnpackValue(p *wrappers.Packer) {
	l.UnixTimestamp = int64(p.UnpackLong())
	l.Epoch = p.UnpackLong()
	copy(l.Custodian[:], p.UnpackFixedBytes(address.Size))
}

// Balances tracks pool-wide totals, refreshed once per epoch.
type Balances struct {
	TotalLamports   uint64
	PoolTokenSupply uint64
	LastUpdateEpoch uint64
}

var _ record.Value = (*Balances)(nil)

func (*Balances) Discriminator() discriminator.Discriminator {
	return BalancesDiscriminator
}

func (b *Balances) PackValue(p *wrappers.Packer) {
	p.PackLong(b.TotalLamports)
	p.PackLong(b.PoolTokenSupply)
	p.PackLong(b.LastUpdateEpoch)
}

func (b *Balances) UnpackValue(p *wrappers.Packer) {
	b.TotalLamports = p.UnpackLong()
	b.PoolTokenSupply = p.UnpackLong()
	b.LastUpdateEpoch = p.UnpackLong()
}

// PreferredValidator optionally pins deposits to one validator. Encoded as a
// presence byte followed by the address when present, so the record is 1 or
// 33 bytes long.
type PreferredValidator struct {
	VoteAccount *address.Address
}

var _ record.Value = (*PreferredValidator)(nil)

func (*PreferredValidator) Discriminator() discriminator.Discriminator {
	return PreferredValidatorDiscriminator
}

func (v *PreferredValidator) PackValue(p *wrappers.Packer) {
	if v.VoteAccount == nil {
		p.PackBool(false)
		return
	}
	p.PackBool(true)
	p.PackFixedBytes(v.VoteAccount[:])
}

func (v *PreferredValidator) UnpackValue(p *wrappers.Packer) {
	if !p.UnpackBool() {
		v.VoteAccount = nil
		return
	}
	var addr address.Address
	copy(addr[:], p.UnpackFixedBytes(address.Size))
	v.VoteAccount = &addr
}

// StakeStatus is the lifecycle state of one validator's stake in the pool.
type StakeStatus byte

const (
	StakeActive StakeStatus = iota
	StakeDeactivatingTransient
	StakeReadyForRemoval
	StakeDeactivatingValidator
)

// ValidatorStakeInfo is one validator's entry in the pool's validator list.
type ValidatorStakeInfo struct {
	ActiveStakeLamports    uint64
	TransientStakeLamports uint64
	LastUpdateEpoch        uint64
	TransientSeedSuffix    uint64
	// Unused was once the range of transient stake account suffixes.
	Unused              uint32
	ValidatorSeedSuffix uint32
	Status              StakeStatus
	VoteAccount         address.Address
}

// validatorStakeInfoLen is the encoded size of one list entry.
const validatorStakeInfoLen = 4*wrappers.LongLen + 2*wrappers.IntLen + wrappers.ByteLen + address.Size

func (v *ValidatorStakeInfo) packInto(p *wrappers.Packer) {
	p.PackLong(v.ActiveStakeLamports)
	p.PackLong(v.TransientStakeLamports)
	p.PackLong(v.LastUpdateEpoch)
	p.PackLong(v.TransientSeedSuffix)
	p.PackInt(v.Unused)
	p.PackInt(v.ValidatorSeedSuffix)
	p.PackByte(byte(v.Status))
	p.PackFixedBytes(v.VoteAccount[:])
}

func (v *ValidatorStakeInfo) unpackFrom(p *wrappers.Packer) {
	v.ActiveStakeLamports = p.UnpackLong()
	v.TransientStakeLamports = p.UnpackLong()
	v.LastUpdateEpoch = p.UnpackLong()
	v.TransientSeedSuffix = p.UnpackLong()
	v.Unused = p.UnpackInt()
	v.ValidatorSeedSuffix = p.UnpackInt()
	v.Status = StakeStatus(p.UnpackByte())
	copy(v.VoteAccount[:], p.UnpackFixedBytes(address.Size))
}

// ValidatorList is the pool's validator set: the list's fixed capacity and a
// count-prefixed entry per validator. It lives in its own account, sized up
// front with ValidatorListSize so the list can grow to MaxValidators without
// reallocating.
type ValidatorList struct {
	MaxValidators uint32
	Validators    []ValidatorStakeInfo
}

var _ record.Value = (*ValidatorList)(nil)

// ValidatorListSize returns the account capacity that holds a validator list
// filled to maxValidators entries, record header included.
func ValidatorListSize(maxValidators uint32) int {
	header := discriminator.Size + wrappers.IntLen
	return header + 2*wrappers.IntLen + int(maxValidators)*validatorStakeInfoLen
}

func (*ValidatorList) Discriminator() discriminator.Discriminator {
	return ValidatorListDiscriminator
}

func (v *ValidatorList) PackValue(p *wrappers.Packer) {
	p.PackInt(v.MaxValidators)
	p.PackInt(uint32(len(v.Validators)))
	for i := range v.Validators {
		v.Validators[i].packInto(p)
	}
}

func (v *ValidatorList) UnpackValue(p *wrappers.Packer) {
	v.MaxValidators = p.UnpackInt()
	count := p.UnpackInt()
	if p.Errored() {
		return
	}
	if int(count) > (len(p.Bytes)-p.Offset)/validatorStakeInfoLen {
		p.Add(errValidatorCount)
		return
	}
	if count == 0 {
		v.Validators = nil
		return
	}
	v.Validators = make([]ValidatorStakeInfo, count)
	for i := range v.Validators {
		v.Validators[i].unpackFrom(p)
	}
}

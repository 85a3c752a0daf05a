// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tlv reads and writes discriminator-tagged, length-prefixed records
// packed inside a fixed-capacity byte buffer.
//
// A record is laid out as
//
//	discriminator[8] || length:u32-LE || value[length]
//
// with no padding between fields or between consecutive records. Records are
// unique by discriminator within one buffer. Readers that do not recognize a
// discriminator can still skip the record, which is what keeps old readers
// working when new record kinds are added.
package tlv

import (
	"errors"
	"fmt"

	"github.com/luxfi/wire/discriminator"
	safemath "github.com/luxfi/wire/utils/math"
	"github.com/luxfi/wire/utils/wrappers"
)

// headerLen is the encoded size of a record header.
const headerLen = discriminator.Size + wrappers.IntLen

var (
	ErrBufferTooSmall  = errors.New("buffer too small")
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateRecord = errors.New("record already present")
	ErrTruncated       = errors.New("truncated record chain")
)

// Range locates a record's value bytes inside a buffer, indexing into
// Bytes(). It stays valid until the next mutating operation.
type Range struct {
	Start int
	End   int
}

// Len returns the number of value bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Buffer is a fixed-capacity byte array holding a chain of TLV records. The
// capacity never grows; when the chain outgrows it the owning account must be
// reallocated by the caller.
//
// A Buffer is not safe for concurrent use. The caller owns it exclusively,
// the same way the host owns the account data backing it.
type Buffer struct {
	data []byte
	used int
}

// New returns an empty buffer with the given fixed capacity.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

// Wrap reattaches to an existing account image. The record chain is scanned
// from the start; a zero discriminator or the end of the slice terminates it.
// The slice is retained, not copied.
func Wrap(data []byte) (*Buffer, error) {
	used := 0
	for used < len(data) {
		if len(data)-used < discriminator.Size {
			if !allZero(data[used:]) {
				return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(data)-used)
			}
			break
		}
		d, _ := discriminator.FromBytes(data[used:])
		if d.IsZero() {
			break
		}
		if len(data)-used < headerLen {
			return nil, fmt.Errorf("%w: header for %s", ErrTruncated, d)
		}
		p := wrappers.Packer{Bytes: data, Offset: used + discriminator.Size}
		length := int(p.UnpackInt())
		next, err := safemath.Add(uint64(used+headerLen), uint64(length))
		if err != nil || next > uint64(len(data)) {
			return nil, fmt.Errorf("%w: value for %s", ErrTruncated, d)
		}
		used = int(next)
	}
	return &Buffer{data: data, used: used}, nil
}

// Capacity returns the fixed size of the backing array.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Used returns the number of bytes occupied by the record chain.
func (b *Buffer) Used() int {
	return b.used
}

// Free returns the remaining capacity.
func (b *Buffer) Free() int {
	return len(b.data) - b.used
}

// Bytes returns the full backing array, trailing unused capacity included.
// This is the exact account image to persist.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Find locates the value bytes of the first record tagged d. The scan reads
// each header and skips length bytes, so unknown record kinds do not stop
// it. Returns ErrNotFound on a miss.
func (b *Buffer) Find(d discriminator.Discriminator) (Range, error) {
	off := 0
	for off < b.used {
		got, _ := discriminator.FromBytes(b.data[off:])
		p := wrappers.Packer{Bytes: b.data, Offset: off + discriminator.Size}
		length := int(p.UnpackInt())
		valStart := off + headerLen
		if got == d {
			return Range{Start: valStart, End: valStart + length}, nil
		}
		off = valStart + length
	}
	return Range{}, fmt.Errorf("%w: %s", ErrNotFound, d)
}

// Get returns a copy of the value bytes of the record tagged d.
func (b *Buffer) Get(d discriminator.Discriminator) ([]byte, error) {
	r, err := b.Find(d)
	if err != nil {
		return nil, err
	}
	value := make([]byte, r.Len())
	copy(value, b.data[r.Start:r.End])
	return value, nil
}

// Insert appends a record tagged d. It fails with ErrDuplicateRecord if the
// buffer already holds one, and with ErrBufferTooSmall if the remaining
// capacity cannot fit the header and value. On failure the buffer is
// unmodified.
func (b *Buffer) Insert(d discriminator.Discriminator, value []byte) error {
	if _, err := b.Find(d); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateRecord, d)
	}
	return b.append(d, value)
}

// Upsert writes a record tagged d, replacing any existing one.
//
// An existing record of equal length is overwritten in place. A different
// length splices: every record after it shifts by the size delta, so Ranges
// returned earlier are invalidated. A missing record is appended. Fails with
// ErrBufferTooSmall, leaving the buffer unmodified, when the new chain would
// exceed capacity.
func (b *Buffer) Upsert(d discriminator.Discriminator, value []byte) error {
	r, err := b.Find(d)
	if err != nil {
		return b.append(d, value)
	}
	if r.Len() == len(value) {
		copy(b.data[r.Start:r.End], value)
		return nil
	}

	delta := len(value) - r.Len()
	if delta > b.Free() {
		return fmt.Errorf("%w: need %d more bytes for %s", ErrBufferTooSmall, delta-b.Free(), d)
	}

	newUsed := b.used + delta
	copy(b.data[r.Start+len(value):newUsed], b.data[r.End:b.used])
	p := wrappers.Packer{MaxSize: len(b.data), Bytes: b.data[:r.Start-wrappers.IntLen], Offset: r.Start - wrappers.IntLen}
	p.PackInt(uint32(len(value)))
	copy(b.data[r.Start:r.Start+len(value)], value)
	if newUsed < b.used {
		zero(b.data[newUsed:b.used])
	}
	b.used = newUsed
	return nil
}

// Remove deletes the record tagged d, shifting all trailing records left.
// The vacated tail is zeroed so the chain terminator stays valid.
func (b *Buffer) Remove(d discriminator.Discriminator) error {
	r, err := b.Find(d)
	if err != nil {
		return err
	}
	recStart := r.Start - headerLen
	newUsed := b.used - (headerLen + r.Len())
	copy(b.data[recStart:newUsed], b.data[r.End:b.used])
	zero(b.data[newUsed:b.used])
	b.used = newUsed
	return nil
}

// Range calls f for every record in chain order, recognized or not, until f
// returns false. The value slice aliases the buffer and must not be retained
// across mutations.
func (b *Buffer) Range(f func(d discriminator.Discriminator, value []byte) bool) {
	off := 0
	for off < b.used {
		d, _ := discriminator.FromBytes(b.data[off:])
		p := wrappers.Packer{Bytes: b.data, Offset: off + discriminator.Size}
		length := int(p.UnpackInt())
		valStart := off + headerLen
		if !f(d, b.data[valStart:valStart+length]) {
			return
		}
		off = valStart + length
	}
}

// append writes a new record at the used-length boundary.
func (b *Buffer) append(d discriminator.Discriminator, value []byte) error {
	needed, err := safemath.Add(uint64(b.used), uint64(headerLen+len(value)))
	if err != nil || needed > uint64(len(b.data)) {
		return fmt.Errorf("%w: %d byte record, %d free", ErrBufferTooSmall, headerLen+len(value), b.Free())
	}
	p := wrappers.Packer{MaxSize: len(b.data), Bytes: b.data[:b.used], Offset: b.used}
	p.PackFixedBytes(d[:])
	p.PackInt(uint32(len(value)))
	p.PackFixedBytes(value)
	b.used = p.Offset
	return nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

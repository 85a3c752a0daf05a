// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package record

import (
	"errors"
	"fmt"

	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/tlv"
)

// Registry maps discriminators to typed value constructors. Registration
// collisions are schema-design errors, so programs register their kinds with
// MustRegister at init time and lookups never re-check uniqueness.
type Registry struct {
	kinds map[discriminator.Discriminator]func() Value
}

func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[discriminator.Discriminator]func() Value),
	}
}

// Register adds a kind, keyed by the discriminator of the value newValue
// returns. Registering two kinds with the same discriminator, or the zero
// discriminator, fails.
func (r *Registry) Register(newValue func() Value) error {
	d := newValue().Discriminator()
	if d.IsZero() {
		return errors.New("registering zero discriminator")
	}
	if _, ok := r.kinds[d]; ok {
		return fmt.Errorf("discriminator collision: %s", d)
	}
	r.kinds[d] = newValue
	return nil
}

// MustRegister is Register for init-time wiring, panicking on collision.
func (r *Registry) MustRegister(newValue func() Value) {
	if err := r.Register(newValue); err != nil {
		panic(err)
	}
}

// Resolve returns a fresh zero value of the kind tagged d, or
// discriminator.ErrUnknown. An unknown tag is absence, not corruption:
// callers skip the record and move on.
func (r *Registry) Resolve(d discriminator.Discriminator) (Value, error) {
	newValue, ok := r.kinds[d]
	if !ok {
		return nil, fmt.Errorf("%w: %s", discriminator.ErrUnknown, d)
	}
	return newValue(), nil
}

// Decode resolves d and unmarshals data into the resulting value.
func (r *Registry) Decode(d discriminator.Discriminator, data []byte) (Value, error) {
	v, err := r.Resolve(d)
	if err != nil {
		return nil, err
	}
	if err := Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeAll walks the buffer's record chain and decodes every recognized
// record, skipping unknown kinds.
func (r *Registry) DecodeAll(b *tlv.Buffer) ([]Value, error) {
	var (
		values []Value
		err    error
	)
	b.Range(func(d discriminator.Discriminator, data []byte) bool {
		v, resolveErr := r.Resolve(d)
		if resolveErr != nil {
			return true
		}
		if err = Unmarshal(data, v); err != nil {
			return false
		}
		values = append(values, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	require := require.New(t)

	raw := make([]byte, Size)
	for i := range raw {
		raw[i] = byte(i)
	}
	a, err := FromBytes(raw)
	require.NoError(err)
	require.Equal(raw, a.Bytes())

	_, err = FromBytes(raw[:31])
	require.ErrorIs(err, ErrWrongSize)

	_, err = FromBytes(append(raw, 0))
	require.ErrorIs(err, ErrWrongSize)
}

func TestStringRoundTrip(t *testing.T) {
	require := require.New(t)

	var a Address
	a[0] = 0xFF
	a[31] = 0x01

	parsed, err := FromString(a.String())
	require.NoError(err)
	require.Equal(a, parsed)
}

func TestFromStringErrors(t *testing.T) {
	require := require.New(t)

	// Invalid base58 alphabet.
	_, err := FromString("0OIl")
	require.Error(err)

	// Valid base58, wrong decoded length.
	_, err = FromString("abc")
	require.ErrorIs(err, ErrWrongSize)
}

func TestEmpty(t *testing.T) {
	require := require.New(t)
	require.Equal(Address{}, Empty)
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	require := require.New(t)

	sum, err := Add[uint64](1, 2)
	require.NoError(err)
	require.Equal(uint64(3), sum)

	_, err = Add[uint64](math.MaxUint64, 1)
	require.ErrorIs(err, ErrOverflow)
}

func TestSub(t *testing.T) {
	require := require.New(t)

	diff, err := Sub[uint32](5, 2)
	require.NoError(err)
	require.Equal(uint32(3), diff)

	_, err = Sub[uint32](2, 5)
	require.ErrorIs(err, ErrUnderflow)
}

func TestMul(t *testing.T) {
	require := require.New(t)

	product, err := Mul[uint64](6, 7)
	require.NoError(err)
	require.Equal(uint64(42), product)

	_, err = Mul[uint64](math.MaxUint64, 2)
	require.ErrorIs(err, ErrOverflow)
}

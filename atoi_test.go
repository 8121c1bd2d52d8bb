// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	cases := []struct {
		s     string
		radix int
		want  uint64
	}{
		{"0", 10, 0},
		{"12345", 10, 12345},
		{"ff", 16, 255},
		{"FF", 16, 255},
		{"11111111", 2, 255},
		{"z", 36, 35},
		{"zz", 36, 35*36 + 35},
	}
	for _, c := range cases {
		got, err := ParseUint(c.s, c.radix, 64)
		require.NoError(t, err, "ParseUint(%q, %d)", c.s, c.radix)
		assert.Equal(t, c.want, got, "ParseUint(%q, %d)", c.s, c.radix)
	}
}

func TestParseUintErrors(t *testing.T) {
	_, err := ParseUint("", 10, 64)
	require.Error(t, err)
	var ne *NumError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, Empty, ne.Kind)

	_, err = ParseUint("12g", 16, 64)
	require.Error(t, err)
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, IncompleteFormat, ne.Kind)

	_, err = ParseUint("99999999999999999999", 10, 64)
	require.Error(t, err)
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, Overflow, ne.Kind)

	_, err = ParseUint("1", 1, 64)
	require.Error(t, err)
}

func TestParseUintBitSizeOverflow(t *testing.T) {
	_, err := ParseUint("256", 10, 8)
	require.Error(t, err)
	var ne *NumError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, Overflow, ne.Kind)

	got, err := ParseUint("255", 10, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(255), got)
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		s     string
		radix int
		want  int64
	}{
		{"0", 10, 0},
		{"-123", 10, -123},
		{"+123", 10, 123},
		{"-ff", 16, -255},
		{"-10000000", 2, -128},
	}
	for _, c := range cases {
		got, err := ParseInt(c.s, c.radix, 64)
		require.NoError(t, err, "ParseInt(%q, %d)", c.s, c.radix)
		assert.Equal(t, c.want, got, "ParseInt(%q, %d)", c.s, c.radix)
	}
}

func TestParseIntRange(t *testing.T) {
	got, err := ParseInt("-128", 10, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(-128), got)

	_, err = ParseInt("-129", 10, 8)
	require.Error(t, err)
	var ne *NumError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, Overflow, ne.Kind)

	got, err = ParseInt("127", 10, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(127), got)

	_, err = ParseInt("128", 10, 8)
	require.Error(t, err)
}

func TestAtoi(t *testing.T) {
	n, err := Atoi("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestParseIntBytesExponent(t *testing.T) {
	n, consumed, err := ParseIntBytes([]byte("+308rest"), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(308), n)
	assert.Equal(t, 4, consumed)

	n, consumed, err = ParseIntBytes([]byte("-12"), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(-12), n)
	assert.Equal(t, 3, consumed)
}

func TestDigitVal(t *testing.T) {
	assert.Equal(t, byte(0), digitVal('0'))
	assert.Equal(t, byte(9), digitVal('9'))
	assert.Equal(t, byte(10), digitVal('a'))
	assert.Equal(t, byte(35), digitVal('z'))
	assert.Equal(t, byte(10), digitVal('A'))
	assert.Equal(t, byte(0xff), digitVal('!'))
}

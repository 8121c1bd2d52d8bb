// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalAssignAndMul(t *testing.T) {
	d := new(decimal)
	d.assign(12345)
	assert.Equal(t, "12345", string(d.d[:d.nd]))
	assert.Equal(t, 5, d.dp)

	d.mulBySmall(2)
	assert.Equal(t, "24690", string(d.d[:d.nd]))
}

func TestDecimalAddSmall(t *testing.T) {
	d := new(decimal)
	d.assign(98)
	d.addSmall(5)
	assert.Equal(t, "103", string(d.d[:d.nd]))
	assert.Equal(t, 3, d.dp)
}

func TestDecimalDivBySmallExact(t *testing.T) {
	d := new(decimal)
	d.assign(100)
	d.divBySmall(4)
	assert.Equal(t, "25", string(d.d[:d.nd]))
	assert.False(t, d.trunc)
}

func TestDecimalShiftMultipliesByPowersOfTwo(t *testing.T) {
	d := new(decimal)
	d.assign(1)
	d.Shift(10)
	assert.Equal(t, "1024", string(d.d[:d.nd]))

	d2 := new(decimal)
	d2.assign(1024)
	d2.Shift(-10)
	assert.Equal(t, "1", string(d2.d[:d2.nd]))
}

func TestNewDecimalFromDigitsHex(t *testing.T) {
	d := newDecimalFromDigits(16, []byte("ff"), 0, false)
	assert.Equal(t, "255", string(d.d[:d.nd]))
	assert.Equal(t, 3, d.dp)
}

func TestNewDecimalFromDigitsWithNegativeExponent(t *testing.T) {
	// "125" base 10 with decExp -2 means the fraction .25 contributed
	// two digits after the point: 125 * 10^-2 = 1.25.
	d := newDecimalFromDigits(10, []byte("125"), -2, false)
	bits, overflow := d.floatBits(&float64info)
	assert.False(t, overflow)
	assert.InDelta(t, 1.25, math.Float64frombits(bits), 1e-15)
}

func TestDecimalFloatBitsZero(t *testing.T) {
	d := new(decimal)
	bits, overflow := d.floatBits(&float64info)
	assert.False(t, overflow)
	assert.Equal(t, uint64(0), bits)
}

func TestDecimalFloatBitsKnownValues(t *testing.T) {
	cases := []struct {
		digits string
		decExp int
		want   float64
	}{
		{"1", 0, 1.0},
		{"5", 0, 5.0},
		{"1", 1, 10.0},
		{"25", -2, 0.25},
	}
	for _, c := range cases {
		d := newDecimalFromDigits(10, []byte(c.digits), c.decExp, false)
		bits, overflow := d.floatBits(&float64info)
		assert.False(t, overflow)
		assert.Equal(t, c.want, math.Float64frombits(bits), "digits=%s decExp=%d", c.digits, c.decExp)
	}
}

func TestDecimalFloatBitsOverflowsToInfinity(t *testing.T) {
	d := newDecimalFromDigits(10, []byte("1"), 400, false)
	bits, overflow := d.floatBits(&float64info)
	assert.True(t, overflow)
	assert.True(t, math.IsInf(math.Float64frombits(bits), 1))
}

func TestDecimalFloatBitsUnderflowsToZero(t *testing.T) {
	d := newDecimalFromDigits(10, []byte("1"), -400, false)
	bits, _ := d.floatBits(&float64info)
	assert.Equal(t, float64(0), math.Float64frombits(bits))
}

func TestDecimalRoundTiesToEven(t *testing.T) {
	d := new(decimal)
	d.assign(125) // rounding to 2 digits: exact tie between 12 and 13
	d.dp = 3
	d.Round(2)
	assert.Equal(t, "12", string(d.d[:d.nd])) // 2 is even, stays down
}

func TestDecimalNegativeSign(t *testing.T) {
	d := newDecimalFromDigits(10, []byte("1"), 0, true)
	bits, _ := d.floatBits(&float64info)
	assert.True(t, math.Signbit(math.Float64frombits(bits)))
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloatShortest(t *testing.T) {
	cases := []struct {
		f    float64
		fmt  byte
		want string
	}{
		{0, 'g', "0"},
		{1, 'g', "1"},
		{0.1, 'g', "0.1"},
		{100, 'g', "100"},
		{3.14159, 'g', "3.14159"},
		{-2.5, 'g', "-2.5"},
	}
	for _, c := range cases {
		got := FormatFloat(c.f, c.fmt, -1, 64)
		assert.Equal(t, c.want, got, "FormatFloat(%v, %q, -1, 64)", c.f, c.fmt)
	}
}

func TestFormatFloatFixedPrecision(t *testing.T) {
	got := FormatFloat(3.14159, 'f', 2, 64)
	assert.Equal(t, "3.14", got)

	got = FormatFloat(1, 'f', 3, 64)
	assert.Equal(t, "1.000", got)
}

func TestFormatFloatExponent(t *testing.T) {
	got := FormatFloat(1234.5, 'e', 2, 64)
	assert.Equal(t, "1.23e+03", got)

	got = FormatFloat(0.0001234, 'E', 3, 64)
	assert.Equal(t, "1.234E-04", got)
}

func TestFormatFloatSpecialValues(t *testing.T) {
	assert.Equal(t, "NaN", FormatFloat(math.NaN(), 'g', -1, 64))
	assert.Equal(t, "+Inf", FormatFloat(math.Inf(1), 'g', -1, 64))
	assert.Equal(t, "-Inf", FormatFloat(math.Inf(-1), 'g', -1, 64))
}

func TestFormatFloatRoundTripsThroughParseFloat(t *testing.T) {
	for _, f := range []float64{1.0, 3.14159265358979, 1e100, 1e-100, 123456789.123456} {
		s := FormatFloat(f, 'g', -1, 64)
		got, err := ParseFloat(s, 10, 64)
		assert.NoError(t, err)
		assert.Equal(t, f, got, "round trip of %v through %q", f, s)
	}
}

func TestFormatFloat32Width(t *testing.T) {
	got := FormatFloat(float64(float32(1.5)), 'g', -1, 32)
	assert.Equal(t, "1.5", got)
}

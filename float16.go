// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

import "github.com/x448/float16"

// Float16 support rides the same scanner/rounding pipeline as the 32-
// and 64-bit paths, parameterized on float16info instead of
// float32info/float64info. Only the fast path knows float32info/
// float64info by identity, so a 16-bit request always skips it; the
// moderate path still runs (it's gated on radix 10 alone), and the
// slow path remains the final fallback for any other radix. It stays
// exact regardless of which path resolves it.

// ParseFloat16 parses s in the given radix (2-36) into the nearest
// representable float16.Float16, round-to-nearest-ties-to-even. It
// requires the whole input to be consumed, matching ParseFloatStrict.
func ParseFloat16(radix int, s []byte) (float16.Float16, int, error) {
	if f, n, ok := specialValue(s); ok && n == len(s) {
		return float16.Fromfloat32(float32(f)), n, nil
	}

	r := scanFloat(radix, s)
	if r.err != nil {
		return 0, 0, r.err
	}
	if r.consumed != len(s) {
		return 0, r.consumed, syntaxError(fnParseFloat, string(s), IncompleteFormat, r.consumed)
	}

	bits, _ := atofBits(radix, s, &r, &float16info)
	return float16.Float16(bits), r.consumed, nil
}

// FormatFloat16 renders h in decimal using FormatFloat's verb/prec
// conventions, by widening to float32 and formatting at 32-bit
// precision: a half float is always exactly representable as a
// float32, so nothing is lost going through the wider type.
func FormatFloat16(h float16.Float16, fmt byte, prec int) string {
	return FormatFloat(float64(h.Float32()), fmt, prec, 32)
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numradix converts between numeral text and native binary
// representations: integers and floats, in any radix from 2 to 36.
//
// Integer conversion (ParseInt, ParseUint, Atoi) is a straightforward
// digit-by-digit accumulation with overflow detection against the
// requested bit width.
//
// Float conversion is the harder problem: turning a decimal (or other
// radix) numeral into the IEEE-754 float that is closest to its exact
// mathematical value, with ties broken toward an even mantissa. The
// parsing pipeline runs in four stages:
//
//   - the digit scanner (scan.go) walks the input once, in any radix,
//     isolating the sign, integer digits, fraction digits, and an
//     optional exponent without allocating;
//
//   - the fast path (atof.go) tries native float arithmetic first,
//     valid only when every intermediate value is exactly representable;
//
//   - the moderate path (extfloat.go, pow10.go, rounding.go) uses an
//     extended-precision significand and a table of pre-rounded powers
//     of ten, falling back when the candidate result sits too close to
//     a rounding boundary to trust;
//
//   - the slow path (decimal.go) falls back to exact arbitrary-precision
//     decimal arithmetic, which always produces the correctly rounded
//     result regardless of how many digits the input has.
//
// The fast and moderate paths are decimal-only; any other radix is
// served directly by the slow path.
//
// Float16 interop (float16.go) reuses the same pipeline, parameterized
// on a 16-bit floatInfo, and formatting (ftoa.go) converts the other
// direction, always through the exact decimal path.
package numradix

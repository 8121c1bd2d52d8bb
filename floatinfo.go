// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

// floatInfo is the native float traits capability set: one struct value
// per native type (float32info, float64info, float16info) instead of a
// generic parameter, one floatInfo value per supported width
// generalized with the extra fields the parsing engine (rather than
// just formatting) needs.
type floatInfo struct {
	mantbits uint // T::MANTISSA_SIZE
	expbits  uint
	bias     int // negated IEEE-754 exponent bias; bias+1 is the smallest normal's unbiased exponent

	maxExactDigits int // T::MAX_EXACT_DIGITS, fast path
	maxExactPower  int // T::MAX_EXACT_POWER, fast path

	defaultShift int      // T::DEFAULT_SHIFT = bits(M) - mantbits - 1
	carryMask    uint64   // T::CARRY_MASK
	overflowMask []uint64 // T::OVERFLOW_MASK, indexed by overflow distance
}

// denormalExponent is T::DENORMAL_EXPONENT: the exponent carried by an
// extFloat once its significand has been reduced to a plain (no hidden
// bit) mantissa field, i.e. bias+1 (smallest normal's unbiased exponent)
// less mantbits (the field width dropped from the significand).
func (f *floatInfo) denormalExponent() int { return f.bias + 1 - int(f.mantbits) }

// maxExponent is T::MAX_EXPONENT, in the same post-rounding exponent
// space as denormalExponent: the largest extFloat exponent that still
// produces a finite result once mantbits is added back in to recover
// the unbiased binary exponent.
func (f *floatInfo) maxExponent() int { return 1<<f.expbits - 1 + f.bias - int(f.mantbits) }

const extMantissaBits = 64 // bits(M) for the monomorphized extFloat

var float32info = floatInfo{
	mantbits:       23,
	expbits:        8,
	bias:           -127,
	maxExactDigits: 7,
	maxExactPower:  10,
	defaultShift:   extMantissaBits - 23 - 1,
	carryMask:      0x1000000,
	overflowMask:   overflowMask32,
}

var float64info = floatInfo{
	mantbits:       52,
	expbits:        11,
	bias:           -1023,
	maxExactDigits: 15,
	maxExactPower:  22,
	defaultShift:   extMantissaBits - 52 - 1,
	carryMask:      0x20000000000000,
	overflowMask:   overflowMask64,
}

// float16info backs the Float16 interop surface.
// It shares the same extFloat/rounding engine; only these seven numbers
// change.
var float16info = floatInfo{
	mantbits:       10,
	expbits:        5,
	bias:           -15,
	maxExactDigits: 3,
	maxExactPower:  4,
	defaultShift:   extMantissaBits - 10 - 1,
	carryMask:      0x800,
	overflowMask:   overflowMask16,
}

// Exact powers of ten representable without rounding in a native float,
// used by the fast path. Kept as two separately-typed tables (not one
// []float64 narrowed on use) so each fast path multiplies in its own
// native precision and rounds exactly once.
var pow10f64 = []float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

var pow10f32 = []float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}

// Overflow masks: entry diff has the top diff+1 bits of a rounded
// (mantbits+1)-bit significand set, from the hidden bit downward.
// avoidOverflow shifts the significand left by diff+1 only when all
// of those bits are zero, so the shift loses nothing.
var overflowMask32 = []uint64{
	0x00800000, 0x00C00000, 0x00E00000, 0x00F00000, 0x00F80000, 0x00FC0000,
	0x00FE0000, 0x00FF0000, 0x00FF8000, 0x00FFC000, 0x00FFE000, 0x00FFF000,
	0x00FFF800, 0x00FFFC00, 0x00FFFE00, 0x00FFFF00, 0x00FFFF80, 0x00FFFFC0,
	0x00FFFFE0, 0x00FFFFF0, 0x00FFFFF8, 0x00FFFFFC, 0x00FFFFFE, 0x00FFFFFF,
}

var overflowMask64 = []uint64{
	0x0010000000000000, 0x0018000000000000, 0x001C000000000000,
	0x001E000000000000, 0x001F000000000000, 0x001F800000000000,
	0x001FC00000000000, 0x001FE00000000000, 0x001FF00000000000,
	0x001FF80000000000, 0x001FFC0000000000, 0x001FFE0000000000,
	0x001FFF0000000000, 0x001FFF8000000000, 0x001FFFC000000000,
	0x001FFFE000000000, 0x001FFFF000000000, 0x001FFFF800000000,
	0x001FFFFC00000000, 0x001FFFFE00000000, 0x001FFFFF00000000,
	0x001FFFFF80000000, 0x001FFFFFC0000000, 0x001FFFFFE0000000,
	0x001FFFFFF0000000, 0x001FFFFFF8000000, 0x001FFFFFFC000000,
	0x001FFFFFFE000000, 0x001FFFFFFF000000, 0x001FFFFFFF800000,
	0x001FFFFFFFC00000, 0x001FFFFFFFE00000, 0x001FFFFFFFF00000,
	0x001FFFFFFFF80000, 0x001FFFFFFFFC0000, 0x001FFFFFFFFE0000,
	0x001FFFFFFFFF0000, 0x001FFFFFFFFF8000, 0x001FFFFFFFFFC000,
	0x001FFFFFFFFFE000, 0x001FFFFFFFFFF000, 0x001FFFFFFFFFF800,
	0x001FFFFFFFFFFC00, 0x001FFFFFFFFFFE00, 0x001FFFFFFFFFFF00,
	0x001FFFFFFFFFFF80, 0x001FFFFFFFFFFFC0, 0x001FFFFFFFFFFFE0,
	0x001FFFFFFFFFFFF0, 0x001FFFFFFFFFFFF8, 0x001FFFFFFFFFFFFC,
	0x001FFFFFFFFFFFFE, 0x001FFFFFFFFFFFFF,
}

// overflowMask16 is derived the same way as the f32/f64 tables above
// (each entry sets one more bit below the hidden bit), sized for a
// 10-bit mantissa instead of 23/52.
var overflowMask16 = []uint64{
	0x0400, 0x0600, 0x0700, 0x0780, 0x07C0, 0x07E0, 0x07F0, 0x07F8, 0x07FC, 0x07FE, 0x07FF,
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

// Rounding kernel and float rounding to native: a mask/mid/shift
// triple truncates a fixed number of low significand bits, a
// post-shift odd-bit test implements ties-to-even, and roundToNative
// carries then avoids overflow in sequence.

// roundingParameters holds the mask/mid/shift triple for truncating a
// fixed number of low bits of a significand.
type roundingParameters struct {
	mask uint64
	mid  uint64
	shift uint
}

// roundingParamsTable[shift] holds the parameters for truncating `shift`
// low bits of a uint64 significand. Index 0 is the identity (no bits
// truncated); computed once here rather than hand-written, since for 65
// entries a generated table and a literal one are equally "static" but
// the generated one cannot drift out of sync with bits(M).
var roundingParamsTable [65]roundingParameters

func init() {
	for shift := uint(0); shift < 65; shift++ {
		var mask uint64
		if shift > 0 {
			mask = 1<<shift - 1
		}
		var mid uint64
		if shift > 0 {
			mid = 1 << (shift - 1)
		}
		roundingParamsTable[shift] = roundingParameters{mask: mask, mid: mid, shift: shift}
	}
}

// roundNearest truncates fp.frac's low params.shift bits, shifts them
// out, and reports whether the truncated bits were above or exactly at
// the halfway point.
func roundNearest(fp *extFloat, params *roundingParameters) (above, halfway bool) {
	truncated := fp.frac & params.mask
	above = truncated > params.mid
	halfway = truncated == params.mid
	fp.shr(params.shift)
	return above, halfway
}

// roundNearestTieEven implements round-to-nearest, ties-to-even.
func roundNearestTieEven(fp *extFloat, params *roundingParameters) {
	above, halfway := roundNearest(fp, params)
	odd := fp.frac&1 == 1
	if above || (halfway && odd) {
		fp.frac++
	}
}

// roundNearestTieAwayZero implements round-to-nearest, ties away from
// zero. Unused by the public entry points (which are all tie-to-even
// per IEEE-754) but kept as part of the Rounding Kernel's documented
// surface and exercised directly by rounding_test.go.
func roundNearestTieAwayZero(fp *extFloat, params *roundingParameters) {
	above, halfway := roundNearest(fp, params)
	if above || halfway {
		fp.frac++
	}
}

// roundToFloat reduces a normalized extFloat to the mantissa bits of a
// native float of the given precision, handling denormals and the
// carry-past-the-hidden-bit case.
func roundToFloat(fp *extFloat, flt *floatInfo) {
	finalExp := int(fp.exp) + flt.defaultShift
	if finalExp < flt.denormalExponent() {
		diff := flt.denormalExponent() - int(fp.exp)
		if diff >= 64 {
			fp.frac = 0
			fp.exp = 0
			return
		}
		roundNearestTieEven(fp, &roundingParamsTable[diff])
	} else {
		roundNearestTieEven(fp, &roundingParamsTable[flt.defaultShift])
	}

	if fp.frac&flt.carryMask == flt.carryMask {
		// Rounding carried into the bit above the hidden bit.
		fp.shr(1)
	}
}

// avoidOverflow shifts fp left when doing so is provably lossless,
// pulling the exponent back into range instead of reporting a spurious
// overflow.
func avoidOverflow(fp *extFloat, flt *floatInfo) {
	maxExp := flt.maxExponent()
	if int(fp.exp) < maxExp {
		return
	}
	diff := int(fp.exp) - maxExp
	if diff < 0 || diff >= len(flt.overflowMask) {
		return
	}
	if fp.frac&flt.overflowMask[diff] == 0 {
		fp.shl(uint(diff + 1))
	}
}

// roundToNative normalizes fp, rounds it to flt's native precision, and
// avoids spurious overflow, leaving fp.frac/fp.exp ready for
// floatBits.
func roundToNative(fp *extFloat, flt *floatInfo) {
	fp.normalize()
	roundToFloat(fp, flt)
	avoidOverflow(fp, flt)
}

// floatBits assembles fp (already rounded via roundToNative) into an
// IEEE-754 bit pattern of flt's width, and reports overflow to +Inf.
//
// By the time roundToNative is done, fp.frac has at most mantbits+1
// significant bits and fp.exp lives in the same exponent space as
// denormalExponent/maxExponent: bit index mantbits of fp.frac is the
// hidden bit when present, so whether it's set is what distinguishes a
// normal result from a denormal one, not which branch of roundToFloat
// ran (a denormal rounding can still carry into the hidden-bit
// position, which is exactly the smallest-normal case).
func floatBits(fp *extFloat, neg bool, flt *floatInfo) (bits uint64, overflow bool) {
	var mant uint64
	var exp int

	switch hidden := uint64(1) << flt.mantbits; {
	case fp.frac == 0:
		mant, exp = 0, 0
	case fp.frac&hidden != 0:
		exp = int(fp.exp) + int(flt.mantbits) - flt.bias
		if exp >= 1<<flt.expbits-1 {
			mant, exp, overflow = 0, 1<<flt.expbits-1, true
		} else {
			mant = fp.frac &^ hidden
		}
	default:
		mant, exp = fp.frac, 0
	}

	out := mant & (1<<flt.mantbits - 1)
	out |= uint64(exp&(1<<flt.expbits-1)) << flt.mantbits
	if neg {
		out |= 1 << flt.mantbits << flt.expbits
	}
	return out, overflow
}

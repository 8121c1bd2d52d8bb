// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

import "math/bits"

// extFloat is an extended-precision significand monomorphized to a
// single 64-bit width (see DESIGN.md for why a wider significand would
// only buy speed, not correctness, given the decimal slow path is exact
// regardless of width). frac is interpreted as
// an unsigned integer scaled by 2^exp; normalized means frac's top bit is
// set (or frac == 0).
type extFloat struct {
	frac uint64
	exp  int32
}

// normalize left-shifts frac until its top bit is set, adjusting exp to
// compensate. A zero significand is left untouched.
func (f *extFloat) normalize() uint {
	if f.frac == 0 {
		return 0
	}
	shift := uint(bits.LeadingZeros64(f.frac))
	f.frac <<= shift
	f.exp -= int32(shift)
	return shift
}

// shl shifts frac left by n bits, decrementing exp accordingly.
func (f *extFloat) shl(n uint) {
	f.frac <<= n
	f.exp -= int32(n)
}

// shr shifts frac right by n bits, discarding the low n bits. Callers
// that need to know whether anything was discarded must inspect those
// bits themselves before calling shr (the rounding kernel does this via
// roundingParameters.mask/mid, not via a side channel here).
func (f *extFloat) shr(n uint) {
	if n >= 64 {
		f.frac = 0
	} else {
		f.frac >>= n
	}
	f.exp += int32(n)
}

// multiply computes the extended-precision product a*b, keeping the high
// 64 bits. Both operands must already be normalized; the
// result is renormalized by at most one bit, since the product of two
// values with the top bit set is itself in [2^126, 2^128) before
// truncation to the high 64 bits.
func (a extFloat) multiply(b extFloat) extFloat {
	hi, lo := bits.Mul64(a.frac, b.frac)
	// Round the discarded low 64 bits into the kept high 64 bits so the
	// product carries at most 1 ulp of error.
	if lo >= 1<<63 {
		hi++
	}
	r := extFloat{frac: hi, exp: a.exp + b.exp + 64}
	if r.frac&(1<<63) == 0 {
		r.shl(1)
	}
	return r
}

// assignDecimal builds a normalized extFloat from a decimal mantissa and
// exponent as scanned by the digit scanner: value = mantissa *
// 10^decExp, with trunc reporting whether extra, non-representable
// digits were discarded from mantissa. ok is false when the input
// mantissa/exponent pair falls outside the table of tabulated powers of
// ten this function is willing to trust; the caller
// must then fall back to the decimal slow path.
func (f *extFloat) assignDecimal(mantissa uint64, decExp int, trunc bool, flt *floatInfo) (ok bool) {
	if mantissa>>55 != 0 {
		// More than 55 significant bits: the multiply's 1-ulp error
		// budget cannot also absorb extra truncation error. Let the
		// caller fall back instead of guessing.
		return false
	}

	// Range tabulated by pow10Extended; see its doc comment. Wide
	// enough to cover every finite float64.
	if decExp < -400 || decExp > 400 {
		return false
	}

	pow := pow10Extended(decExp)

	f.frac = mantissa
	f.exp = 0
	f.normalize()
	*f = f.multiply(pow)

	// The table carries <=0.5ulp error and the multiply itself adds
	// <=1ulp; a truncated input mantissa adds a further
	// <=1ulp of uncertainty. The rounding decision is only trustworthy
	// if the candidate is clearly outside that combined error ball
	// around the nearest halfway point.
	errorBits := uint(1)
	if trunc {
		errorBits++
	}
	return marginIsSafe(*f, flt, errorBits)
}

// marginIsSafe reports whether the rounding decision for a value with
// errorBits of uncertainty in its lowest bits is unambiguous: the
// rounded result must not be within errorBits+1 bits of the halfway
// point between two representable floats of flt's precision.
func marginIsSafe(f extFloat, flt *floatInfo, errorBits uint) bool {
	shift := uint(64 - flt.mantbits - 1)
	if f.exp+int32(flt.defaultShift) < int32(flt.denormalExponent()) {
		diff := flt.denormalExponent() - int(f.exp)
		if diff >= 64 {
			return true // certain underflow to zero, unambiguous
		}
		shift = uint(diff)
	}
	if shift == 0 {
		return true
	}
	halfway := uint64(1) << (shift - 1)
	truncated := f.frac & (1<<shift - 1)
	// Distance from the halfway point; if the error budget could
	// plausibly flip which side of halfway we are on, refuse the fast
	// answer.
	var dist uint64
	if truncated >= halfway {
		dist = truncated - halfway
	} else {
		dist = halfway - truncated
	}
	margin := uint64(1) << errorBits
	return dist > margin
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

import (
	"bytes"
	"math"
)

// Orchestration: bytes -> Digit Scanner -> (Fast | Moderate -> maybe
// Slow) -> Float Rounding -> native float. Generalized from hardcoded
// radix 10 to any radix 2-36: the fast and moderate paths stay
// decimal-only, and any non-10 radix goes straight to the decimal slow
// path, which newDecimalFromDigits already builds from an
// arbitrary-radix digit run.

const fnParseFloat = "ParseFloat"

var infinityLiterals = [][]byte{
	[]byte("infinity"), []byte("inf"),
	[]byte("+infinity"), []byte("+inf"),
}
var negInfinityLiterals = [][]byte{
	[]byte("-infinity"), []byte("-inf"),
}
var nanLiteral = []byte("nan")

// specialValue recognizes the inf/infinity/nan literals, independent
// of radix; NaN is produced only by this literal recognition, never
// as the result of an arithmetic operation.
func specialValue(s []byte) (f float64, consumed int, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	switch s[0] {
	case '+', 'i', 'I':
		for _, lit := range infinityLiterals {
			if n := matchFold(s, lit); n > 0 {
				return math.Inf(1), n, true
			}
		}
	case '-':
		for _, lit := range negInfinityLiterals {
			if n := matchFold(s, lit); n > 0 {
				return math.Inf(-1), n, true
			}
		}
	case 'n', 'N':
		if n := matchFold(s, nanLiteral); n > 0 {
			return math.NaN(), n, true
		}
	}
	return 0, 0, false
}

// matchFold returns len(lit) if s has lit as a case-insensitive
// prefix, else 0.
func matchFold(s, lit []byte) int {
	if len(s) < len(lit) {
		return 0
	}
	if bytes.EqualFold(s[:len(lit)], lit) {
		return len(lit)
	}
	return 0
}

// atofMantissa accumulates a scanned digit run (radix r, as delimited
// by a scanResult) into a truncated uint64 significand, stopping once
// adding another digit could overflow 55 bits -- the same budget
// extFloat.assignDecimal already enforces on its mantissa argument.
// dropped counts the digits left out, so mantissa * radix^(r.decExp +
// dropped) approximates the scanned value; trunc reports whether any of
// them was nonzero.
func atofMantissa(radix int, s []byte, r *scanResult) (mantissa uint64, dropped int, trunc bool) {
	const maxMantissaBits = 55
	cutoff := uint64(1) << maxMantissaBits >> uint(log2Ceil(radix))

	accumulate := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v := digitVal(s[i])
			if mantissa > cutoff {
				dropped++
				if v != 0 {
					trunc = true
				}
				continue
			}
			mantissa = mantissa*uint64(radix) + uint64(v)
		}
	}
	accumulate(r.intStart, r.intEnd)
	accumulate(r.fracStart, r.fracEnd)
	return mantissa, dropped, trunc
}

// log2Ceil returns ceil(log2(n)) for n >= 2, used to size the
// mantissa-accumulation cutoff so that one more digit never overflows
// past maxMantissaBits regardless of radix.
func log2Ceil(n int) int {
	bitsNeeded := 0
	for v := 1; v < n; v <<= 1 {
		bitsNeeded++
	}
	return bitsNeeded
}

// digitRun concatenates a scanResult's integer and fraction digit
// ranges into one contiguous byte slice, the form newDecimalFromDigits
// expects.
func digitRun(s []byte, r *scanResult) []byte {
	if r.intEnd == r.fracStart {
		return s[r.intStart:r.fracEnd]
	}
	out := make([]byte, 0, (r.intEnd-r.intStart)+(r.fracEnd-r.fracStart))
	out = append(out, s[r.intStart:r.intEnd]...)
	out = append(out, s[r.fracStart:r.fracEnd]...)
	return out
}

// atofExact32/atofExact64 are the fast path: native float arithmetic,
// trustworthy only when every operand is exactly representable.
func atofExact64(mantissa uint64, decExp int, neg bool, flt *floatInfo) (f float64, ok bool) {
	if mantissa>>flt.mantbits != 0 {
		return 0, false
	}
	f = float64(mantissa)
	if neg {
		f = -f
	}
	switch {
	case decExp == 0:
		return f, true
	case decExp > 0 && decExp <= flt.maxExactDigits+flt.maxExactPower:
		if decExp > flt.maxExactPower {
			f *= pow10f64[decExp-flt.maxExactPower]
			decExp = flt.maxExactPower
		}
		if f > 1e15 || f < -1e15 {
			return 0, false
		}
		return f * pow10f64[decExp], true
	case decExp < 0 && decExp >= -flt.maxExactPower:
		return f / pow10f64[-decExp], true
	}
	return 0, false
}

func atofExact32(mantissa uint64, decExp int, neg bool, flt *floatInfo) (f float32, ok bool) {
	if mantissa>>flt.mantbits != 0 {
		return 0, false
	}
	f = float32(mantissa)
	if neg {
		f = -f
	}
	switch {
	case decExp == 0:
		return f, true
	case decExp > 0 && decExp <= flt.maxExactDigits+flt.maxExactPower:
		if decExp > flt.maxExactPower {
			f *= pow10f32[decExp-flt.maxExactPower]
			decExp = flt.maxExactPower
		}
		if f > 1e7 || f < -1e7 {
			return 0, false
		}
		return f * pow10f32[decExp], true
	case decExp < 0 && decExp >= -flt.maxExactPower:
		return f / pow10f32[-decExp], true
	}
	return 0, false
}

// atofBits is the shared orchestration behind ParseFloat*: it takes
// already-scanned digits and tries, in order, the fast path, the
// moderate path (radix 10 only), then the slow path, returning the
// IEEE-754 bit pattern of flt's width.
func atofBits(radix int, s []byte, r *scanResult, flt *floatInfo) (bits uint64, overflow bool) {
	mantissa, dropped, trunc := atofMantissa(radix, s, r)
	nd := (r.intEnd - r.intStart) + (r.fracEnd - r.fracStart)

	if radix == 10 && !trunc && nd <= flt.maxExactDigits {
		switch flt {
		case &float64info:
			if f, ok := atofExact64(mantissa, r.decExp, r.neg, flt); ok {
				return math.Float64bits(f), false
			}
		case &float32info:
			if f, ok := atofExact32(mantissa, r.decExp, r.neg, flt); ok {
				return uint64(math.Float32bits(f)), false
			}
		}
	}

	if radix == 10 {
		ext := new(extFloat)
		if ext.assignDecimal(mantissa, r.decExp+dropped, trunc, flt) {
			roundToNative(ext, flt)
			b, ovf := floatBits(ext, r.neg, flt)
			return b, ovf
		}
	}

	d := newDecimalFromDigits(radix, digitRun(s, r), r.decExp, r.neg)
	return d.floatBits(flt)
}

// ParseFloatStrict parses s in full: the whole input must be consumed
// or the parse fails.
func ParseFloatStrict(radix int, s []byte, bitSize int) (float64, int, error) {
	if f, n, ok := specialValue(s); ok && n == len(s) {
		return f, n, nil
	}
	flt := &float64info
	if bitSize == 32 {
		flt = &float32info
	}
	r := scanFloat(radix, s)
	if r.err != nil {
		return 0, 0, r.err
	}
	if r.consumed != len(s) {
		return 0, r.consumed, syntaxError(fnParseFloat, string(s), IncompleteFormat, r.consumed)
	}
	// overflow only confirms the result rounded to +-Inf; it is not an
	// error condition for float parsing (unlike integer parsing's
	// Overflow Kind).
	bits, _ := atofBits(radix, s, &r, flt)
	return bitsToFloat(bits, bitSize), r.consumed, nil
}

// ParseFloatLenient parses the longest valid prefix of s; an empty
// prefix is an error.
func ParseFloatLenient(radix int, s []byte, bitSize int) (float64, int, error) {
	if f, n, ok := specialValue(s); ok {
		return f, n, nil
	}
	flt := &float64info
	if bitSize == 32 {
		flt = &float32info
	}
	r := scanFloat(radix, s)
	if r.err != nil {
		return 0, 0, r.err
	}
	bits, _ := atofBits(radix, s, &r, flt)
	return bitsToFloat(bits, bitSize), r.consumed, nil
}

// ParseFloatLossy uses the fast and moderate paths only, never the
// slow path, so a non-representable radix-10 input may be off by up
// to 1 ulp. Any other radix (which this implementation only serves via
// the slow path) always falls back to ParseFloatLenient.
func ParseFloatLossy(radix int, s []byte, bitSize int) (float64, int, error) {
	if radix != 10 {
		return ParseFloatLenient(radix, s, bitSize)
	}
	if f, n, ok := specialValue(s); ok {
		return f, n, nil
	}
	flt := &float64info
	if bitSize == 32 {
		flt = &float32info
	}
	r := scanFloat(radix, s)
	if r.err != nil {
		return 0, 0, r.err
	}
	mantissa, dropped, trunc := atofMantissa(radix, s, &r)
	nd := (r.intEnd - r.intStart) + (r.fracEnd - r.fracStart)
	if !trunc && nd <= flt.maxExactDigits {
		if flt == &float64info {
			if f, ok := atofExact64(mantissa, r.decExp, r.neg, flt); ok {
				return f, r.consumed, nil
			}
		} else {
			if f, ok := atofExact32(mantissa, r.decExp, r.neg, flt); ok {
				return float64(f), r.consumed, nil
			}
		}
	}
	decExp := r.decExp + dropped
	if mantissa != 0 && (decExp < pow10Min || decExp > pow10Max) {
		// Beyond the tabulated powers of ten the result is an overflow
		// to infinity or an underflow to zero.
		f := 0.0
		if decExp > 0 {
			f = math.Inf(1)
		}
		if r.neg {
			f = -f
		}
		return f, r.consumed, nil
	}
	ext := new(extFloat)
	ext.assignDecimal(mantissa, decExp, trunc, flt) // best effort; ok or not, use what we have
	roundToNative(ext, flt)
	bits, _ := floatBits(ext, r.neg, flt)
	return bitsToFloat(bits, bitSize), r.consumed, nil
}

// ParseFloat is the convenience entry point matching the standard
// library's signature: strict parsing in the given radix.
func ParseFloat(s string, radix, bitSize int) (float64, error) {
	f, _, err := ParseFloatStrict(radix, []byte(s), bitSize)
	return f, err
}

func bitsToFloat(bits uint64, bitSize int) float64 {
	if bitSize == 32 {
		return float64(math.Float32frombits(uint32(bits)))
	}
	return math.Float64frombits(bits)
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numradix

import "math/big"

// pow10Table holds the closest extFloat to 10^k for k in
// [pow10Min, pow10Max], indexed by k-pow10Min. These are meant to be
// program-lifetime constants computed once ahead of time; rather than
// an offline codegen step, the equivalent is done once, exactly, at
// package init time using math/big (arbitrary precision, so the
// rounding to 64 bits done here is provably the single nearest
// extFloat to the true power).
const (
	pow10Min = -400
	pow10Max = 400
)

var pow10Table [pow10Max - pow10Min + 1]extFloat

func init() {
	// 10^400 needs roughly 1330 bits; about 270 extra guard bits is ample to
	// make the final round-to-64-bits exact.
	const prec = 1600
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	ten := new(big.Float).SetPrec(prec).SetInt64(10)
	p := new(big.Float).SetPrec(prec).Set(one)
	for k := 0; k <= pow10Max; k++ {
		pow10Table[k-pow10Min] = bigFloatToExt(p, prec)
		p = new(big.Float).SetPrec(prec).Mul(p, ten)
	}
	q := new(big.Float).SetPrec(prec).Set(one)
	for k := 0; k >= pow10Min; k-- {
		pow10Table[k-pow10Min] = bigFloatToExt(q, prec)
		q = new(big.Float).SetPrec(prec).Quo(q, ten)
	}

	// Verify the rounding-parameter table index is in range for every
	// floatInfo actually in use.
	for _, flt := range []*floatInfo{&float32info, &float64info, &float16info} {
		if flt.defaultShift < 0 || flt.defaultShift >= len(roundingParamsTable) {
			panic("numradix: defaultShift out of range for rounding parameter table")
		}
	}
}

// bigFloatToExt rounds x (assumed positive and finite) to the nearest
// extFloat: a normalized 64-bit significand and a binary exponent.
//
// big.Float.Set rounds to its receiver's precision using round-to-
// nearest-even, unlike Uint64/Int which truncate toward zero. So the
// rounding to 64 significant bits happens in the first line (SetPrec(64)
// .Set(x)); the MantExp/SetMantExp dance that follows is exact bit
// shuffling, not a second, truncating rounding step.
func bigFloatToExt(x *big.Float, prec uint) extFloat {
	r := new(big.Float).SetPrec(64).Set(x)
	mant := new(big.Float).SetPrec(64)
	exp := r.MantExp(mant) // r = mant * 2^exp, 0.5 <= mant < 1
	mant.SetMantExp(mant, 64)
	frac, _ := mant.Uint64() // exact: mant*2^64 is already a 64-bit integer
	f := extFloat{frac: frac, exp: int32(exp) - 64}
	f.normalize()
	return f
}

// pow10Extended returns the closest extFloat to 10^decExp for decExp in
// [pow10Min, pow10Max]. Callers must range-check decExp first.
func pow10Extended(decExp int) extFloat {
	return pow10Table[decExp-pow10Min]
}

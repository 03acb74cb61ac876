// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains float64 helpers for decimal normalization.
package mathutil

import (
	"math"
)

const (
	// maxStep is the largest power of ten applied in one multiplication,
	// so that neither 10^maxStep nor 10^-maxStep leaves the float64 range.
	maxStep = 300
	// minNormal is the smallest positive normal float64.
	minNormal = 0x1p-1022
)

var (
	// exact powers of ten, float64 represents all of them without rounding.
	pow10Table = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
)

// Pow10 returns 10^pow.
// Small non-negative powers are taken from a table and are exact.
func Pow10(pow int) float64 {
	if pow >= 0 && pow < len(pow10Table) {
		return pow10Table[pow]
	}
	return math.Pow10(pow)
}

// ScalePow10 returns f*10^e without overflowing intermediate results
// when f*10^e itself is representable.
func ScalePow10(f float64, e int) float64 {
	for e > maxStep {
		f *= Pow10(maxStep)
		e -= maxStep
	}
	for e < -maxStep {
		f /= Pow10(maxStep)
		e += maxStep
	}
	if e < 0 {
		// division by an exact power keeps more precision than
		// multiplication by an inexact negative power.
		return f / Pow10(-e)
	}
	return f * Pow10(e)
}

// toNormal moves a subnormal f into the normal range.
// Returns the new value and the power of ten it was multiplied by.
func toNormal(f float64) (float64, int) {
	if f < minNormal {
		return f * Pow10(maxStep), maxStep
	}
	return f, 0
}

// FloorLog10 returns floor(log10(f)) for a positive finite f.
// The result is corrected for log10 rounding near exact powers of ten.
func FloorLog10(f float64) int {
	f, shift := toNormal(f)
	return floorLog10(f) - shift
}

// floorLog10 expects a normal f.
func floorLog10(f float64) int {
	e := int(math.Floor(math.Log10(f)))
	for ScalePow10(f, -e) >= 10 {
		e++
	}
	for ScalePow10(f, -e) < 1 {
		e--
	}
	return e
}

// NormFloat64 returns such (mant, exp), that 1 <= mant < 10 and mant*10^exp ~= f.
// Zero, negative and non-finite inputs return (0, 0).
func NormFloat64(f float64) (mant float64, exp int) {
	if !(f > 0) || math.IsInf(f, 0) {
		return 0, 0
	}
	f, shift := toNormal(f)
	exp = floorLog10(f)
	mant, exp = ClampMant(ScalePow10(f, -exp), exp)
	return mant, exp - shift
}

// ClampMant fixes the mantissa after floating point rounding has pushed it
// to the borders of [1, 10).
func ClampMant(mant float64, exp int) (float64, int) {
	switch {
	case mant >= 10:
		return 1, exp + 1
	case mant < 1:
		// only rounding produces values like 0.9999999999999999 here.
		return math.Nextafter(10, 0), exp - 1
	}
	return mant, exp
}

// FloorDivMod returns such q and r, that a = q*b + r and 0 <= r < b for b > 0.
func FloorDivMod(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// AddInt64 returns a+b, and false if the sum overflows.
func AddInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return c, false
	}
	return c, true
}

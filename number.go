// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bignum implements a positive number of unbounded magnitude,
// stored as a normalized decimal mantissa and a power of ten.
// Every number has a short human-readable rendering, like "12.3K" or "1.5x10^30",
// which can be parsed back.
//
// Numbers are values: all operations return a new Number, and a Number
// can be safely copied and shared between goroutines.
package bignum

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/bignum/internal/mathutil"
)

const (
	// MaxExponent is the largest exponent a number can have.
	// Results above it saturate at MaxExponent.
	MaxExponent = 1<<61 - 1
	// MinExponent is the smallest exponent a number can have.
	// Results below it become zero.
	MinExponent = -MaxExponent

	// float64 holds neither 10^maxFloatExp nor 10^-maxFloatExp.
	maxFloatExp = 400
)

var (
	zero Number

	errBadFloat = errors.New("bad float number")
	errRange    = errors.New("exponent out of range")
)

// Number is a non-negative number m*10^e, where 1 <= m < 10.
// Zero is represented as m = 0, e = 0.
// The zero value of Number is the number 0.
type Number struct {
	mant float64
	exp  int64
}

func split(n Number) (mantissa float64, exponent int64) {
	return n.mant, n.exp
}

// withExp builds a number from an already normalized mantissa,
// applying the exponent range rules.
func withExp(mant float64, exp int64) Number {
	switch {
	case mant == 0 || exp < MinExponent:
		return zero
	case exp > MaxExponent:
		exp = MaxExponent
	}
	return Number{mant: mant, exp: exp}
}

// normalize moves any positive finite mantissa into [1, 10),
// carrying the difference into the exponent.
func normalize(mant float64, exp int64) Number {
	if mant == 0 {
		return zero
	}
	if mant >= 10 || mant < 1 {
		m, e := mu.NormFloat64(mant)
		mant = m
		exp += int64(e)
	}
	return withExp(mant, exp)
}

// FromFloat64 returns a number for given float64.
// Returns an error for negative values, infinities, and not-a-numbers.
func FromFloat64(v float64) (Number, error) {
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return zero, errBadFloat
	}
	if v == 0 {
		return zero, nil
	}
	m, e := mu.NormFloat64(v)
	return withExp(m, int64(e)), nil
}

// MustFromFloat64 is like FromFloat64, but panics on error.
func MustFromFloat64(v float64) Number {
	n, err := FromFloat64(v)
	if err != nil {
		panic(fmt.Sprintf("FromFloat64(%v) failed: %v", v, err))
	}
	return n
}

// FromMantAndExp returns a number equal to mant*10^exp.
// The mantissa does not have to be normalized, any non-negative finite value is accepted.
// Returns an error if exp is out of [MinExponent, MaxExponent].
func FromMantAndExp(mant float64, exp int64) (Number, error) {
	if mant < 0 || math.IsInf(mant, 0) || math.IsNaN(mant) {
		return zero, errBadFloat
	}
	if exp < MinExponent || exp > MaxExponent {
		return zero, errRange
	}
	return normalize(mant, exp), nil
}

// Mantissa returns n's mantissa, which is in [1, 10) for all numbers except zero.
func (n Number) Mantissa() float64 {
	return n.mant
}

// Exponent returns n's power of ten.
func (n Number) Exponent() int64 {
	return n.exp
}

// DisplayFormat returns the format used to render n.
func (n Number) DisplayFormat() Format {
	return formatFor(n.exp)
}

// IsZero returns true, if n == 0.
func (n Number) IsZero() bool {
	return n.mant == 0
}

// ShiftPower returns n*10^delta.
// The mantissa stays untouched, only the exponent changes.
func (n Number) ShiftPower(delta int) Number {
	if delta == 0 || n.IsZero() {
		return n
	}
	exp, ok := mu.AddInt64(n.exp, int64(delta))
	if !ok {
		if delta > 0 {
			exp = MaxExponent
		} else {
			return zero
		}
	}
	return withExp(n.mant, exp)
}

// DecreasePower returns n*10^-delta.
func (n Number) DecreasePower(delta int) Number {
	if delta == math.MinInt {
		// -delta overflows.
		return n.ShiftPower(math.MaxInt)
	}
	return n.ShiftPower(-delta)
}

// Mul returns n*other.
func (n Number) Mul(other Number) Number {
	m1, e1 := split(n)
	m2, e2 := split(other)
	if m1 == 0 || m2 == 0 {
		return zero
	}
	// both exponents are within [MinExponent, MaxExponent], so the sum fits int64.
	e := e1 + e2
	m := m1 * m2
	// m1, m2 < 10, so m < 100 and a single carry is enough.
	if m >= 10 {
		m /= 10
		e++
	}
	m, carry := mu.ClampMant(m, 0)
	return withExp(m, e+int64(carry))
}

// MulFloat64 returns n*f.
// f must be a non-negative finite number, MulFloat64 panics otherwise.
func (n Number) MulFloat64(f float64) Number {
	return n.Mul(MustFromFloat64(f))
}

// Eq returns true, if both numbers have the same mantissa and exponent.
func (n Number) Eq(other Number) bool {
	return n == other
}

// Cmp compares two numbers.
// Returns -1 if n < other, 0 if n == other, 1 if n > other.
func (n Number) Cmp(other Number) int {
	m1, e1 := split(n)
	m2, e2 := split(other)
	switch {
	case m1 == 0 || m2 == 0 || e1 == e2:
		return floatCmp(m1, m2)
	case e1 > e2:
		return 1
	default:
		return -1
	}
}

func floatCmp(a, b float64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Float64 returns an approximate float64 value.
// Numbers above the float64 range return +Inf, numbers below it return 0.
func (n Number) Float64() float64 {
	m, e := split(n)
	switch {
	case m == 0 || e < -maxFloatExp:
		return 0
	case e > maxFloatExp:
		return math.Inf(1)
	}
	return mu.ScalePow10(m, int(e))
}

// Decimal returns n as an exact decimal expansion of its mantissa and exponent.
// Returns an error if the exponent does not fit the decimal's int32 exponent.
func (n Number) Decimal() (decimal.Decimal, error) {
	m, e := split(n)
	if e < math.MinInt32 || e > math.MaxInt32 {
		return decimal.Zero, errRange
	}
	return decimal.NewFromFloat(m).Mul(decimal.New(1, int32(e))), nil
}

// GoString returns debug string representation.
func (n Number) GoString() string {
	m, e := split(n)
	return n.String() + fmt.Sprintf(" {%v, %v}", m, e)
}

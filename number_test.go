// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mantDelta = 1e-12

var dump = spew.ConfigState{DisableMethods: true, Indent: " "}

func num(mant float64, exp int64) Number {
	return Number{mant: mant, exp: exp}
}

func assertNumber(a *assert.Assertions, expected, actual Number, msgAndArgs ...interface{}) {
	a.InDelta(expected.mant, actual.mant, mantDelta, msgAndArgs...)
	a.Equal(expected.exp, actual.exp, msgAndArgs...)
}

func assertNormalized(a *assert.Assertions, n Number) bool {
	if n.IsZero() {
		return a.Equal(zero, n, dump.Sdump(n))
	}
	return a.True(n.mant >= 1 && n.mant < 10, "mantissa out of range: %s", dump.Sdump(n))
}

func TestFromFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		n   Number
		err string
	}{
		{0, zero, ""},
		{5, num(5, 0), ""},
		{12345, num(1.2345, 4), ""},
		{400000, num(4, 5), ""},
		{10, num(1, 1), ""},
		{0.5, num(5, -1), ""},
		{0.012345, num(1.2345, -2), ""},
		{1e22, num(1, 22), ""},
		{math.MaxFloat64, num(1.7976931348623157, 308), ""},
		{1.5e-310, num(1.5, -310), ""},
		{5e-324, num(4.94065645841247, -324), ""},

		{-1, zero, "bad float number"},
		{math.Inf(1), zero, "bad float number"},
		{math.Inf(-1), zero, "bad float number"},
		{math.NaN(), zero, "bad float number"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, err := FromFloat64(test.f)
			if len(test.err) == 0 {
				if a.NoError(err) {
					assertNumber(a, test.n, n)
					assertNormalized(a, n)
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}

func TestFromFloatSubnormal(t *testing.T) {
	a := assert.New(t)
	for _, f := range []float64{1e-310, 1.5e-310, 3e-320, 5e-324} {
		n, err := FromFloat64(f)
		if a.NoError(err) {
			assertNormalized(a, n)
			a.InEpsilon(f, n.Float64(), 1e-3, dump.Sdump(n))
		}
	}
	a.Equal("1.5x10^-310", MustFromFloat64(1.5e-310).String())
}

func TestMustFromFloat64(t *testing.T) {
	a := assert.New(t)
	a.Equal(num(5, 0), MustFromFloat64(5))
	a.Panics(func() {
		MustFromFloat64(-5)
	})
}

func TestFromFloatNormalized(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		f := r.Float64() * math.Pow10(r.Intn(600)-300)
		n, err := FromFloat64(f)
		require.NoError(t, err)
		assertNormalized(a, n)
		if !n.IsZero() {
			a.InEpsilon(f, n.Float64(), 1e-12, dump.Sdump(n))
		}
	}
}

func TestFromMantAndExp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant float64
		exp  int64
		n    Number
		err  string
	}{
		{0, 5, zero, ""},
		{5, 0, num(5, 0), ""},
		{12.3, 3, num(1.23, 4), ""},
		{0.05, 0, num(5, -2), ""},
		{123456, 10, num(1.23456, 15), ""},
		{99, MaxExponent, num(9.9, MaxExponent), ""},
		{0.5, MinExponent, zero, ""},
		{1, MinExponent, num(1, MinExponent), ""},

		{-1, 0, zero, "bad float number"},
		{math.NaN(), 0, zero, "bad float number"},
		{math.Inf(1), 0, zero, "bad float number"},
		{1, MaxExponent + 1, zero, "exponent out of range"},
		{1, MinExponent - 1, zero, "exponent out of range"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, err := FromMantAndExp(test.mant, test.exp)
			if len(test.err) == 0 {
				if a.NoError(err) {
					assertNumber(a, test.n, n)
					assertNormalized(a, n)
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}

func TestDisplayFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n Number
		f Format
	}{
		{zero, Compact},
		{num(5, 0), Compact},
		{num(1, 26), Compact},
		{num(9.99, 26), Compact},
		{num(1, 27), Exponential},
		{num(1, -1), Exponential},
		{num(1, -100), Exponential},
		{num(1, MaxExponent), Exponential},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.f, test.n.DisplayFormat())
		})
	}
}

func TestShiftPower(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n      Number
		delta  int
		result Number
	}{
		{num(5, 0), 29, num(5, 29)},
		{num(5, 0), 0, num(5, 0)},
		{zero, 10, zero},
		{zero, -10, zero},
		{num(1.5, 30), -31, num(1.5, -1)},
		{num(1.2345, 4), 3, num(1.2345, 7)},
		{num(1.5, MaxExponent-1), 10, num(1.5, MaxExponent)},
		{num(1.5, MinExponent+1), -10, zero},
		{num(1.5, 0), math.MaxInt, num(1.5, MaxExponent)},
		{num(1.5, 0), math.MinInt, zero},
		{num(1.5, -10), math.MinInt, zero},
		{num(1.5, MaxExponent), math.MaxInt, num(1.5, MaxExponent)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, test.n.ShiftPower(test.delta))
		})
	}
}

func TestDecreasePower(t *testing.T) {
	a := assert.New(t)
	a.Equal(num(5, -3), num(5, 0).DecreasePower(3))
	a.Equal(num(5, 3), num(5, 0).DecreasePower(-3))
	a.Equal(num(5, 0), num(5, 0).DecreasePower(0))
	a.Equal(num(5, MaxExponent), num(5, 0).DecreasePower(math.MinInt))
	a.Equal(num(5, 0).ShiftPower(math.MaxInt), num(5, 0).DecreasePower(math.MinInt))
	a.Equal(zero, zero.DecreasePower(math.MinInt))
	a.Equal(zero, zero.DecreasePower(7))
}

func TestShiftPowerAdditive(t *testing.T) {
	a := assert.New(t)
	deltas := []int{-1000, -31, -27, -1, 0, 1, 2, 26, 27, 1000}
	for _, n := range []Number{num(5, 0), num(1.2345, 4), num(9.99, -7), zero} {
		for _, m := range deltas {
			for _, k := range deltas {
				a.Equal(n.ShiftPower(m+k), n.ShiftPower(m).ShiftPower(k), "%s: %d, %d", dump.Sdump(n), m, k)
				a.Equal(n.ShiftPower(m).DisplayFormat(), formatFor(n.ShiftPower(m).Exponent()))
			}
		}
	}
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b   Number
		result Number
	}{
		{zero, zero, zero},
		{zero, num(5, 0), zero},
		{num(5, 0), zero, zero},
		{num(5, 0), num(1, 0), num(5, 0)},
		{num(5, 0), num(4, 5), num(2, 6)},
		{num(2, 5), num(5, 3), num(1, 9)},
		{num(3, 10), num(3, -12), num(9, -2)},
		{num(9.9, 1), num(9.9, 1), num(9.801, 3)},
		{num(1.5, 20), num(2, 10), num(3, 30)},
		{num(5, MaxExponent), num(5, 1), num(2.5, MaxExponent)},
		{num(1, MinExponent), num(1, -1), zero},
		{num(5, MaxExponent), num(5, MinExponent), num(2.5, 1)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := test.a.Mul(test.b)
			assertNumber(a, test.result, res)
			assertNormalized(a, res)
			assertNumber(a, test.result, test.b.Mul(test.a))
		})
	}
}

func TestMulLaws(t *testing.T) {
	a := assert.New(t)
	one := MustFromFloat64(1)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		x := num(1+9*r.Float64(), int64(r.Intn(200)-100))
		y := num(1+9*r.Float64(), int64(r.Intn(200)-100))
		if x.mant >= 10 || y.mant >= 10 {
			continue
		}
		a.Equal(x, x.Mul(one))

		res := x.Mul(y)
		assertNormalized(a, res)
		if x.mant*y.mant >= 10 {
			a.Equal(x.exp+y.exp+1, res.exp, "%s * %s", dump.Sdump(x), dump.Sdump(y))
		} else {
			a.Equal(x.exp+y.exp, res.exp, "%s * %s", dump.Sdump(x), dump.Sdump(y))
		}
		a.Equal(formatFor(res.exp), res.DisplayFormat())
	}
}

func TestMulFloat64(t *testing.T) {
	a := assert.New(t)
	res := MustFromFloat64(5).MulFloat64(400000)
	assertNumber(a, num(2, 6), res)
	a.Equal("2M", res.String())
	a.Equal(zero, num(5, 3).MulFloat64(0))
	a.Panics(func() {
		num(5, 0).MulFloat64(-1)
	})
	a.Panics(func() {
		num(5, 0).MulFloat64(math.NaN())
	})
}

func TestEq(t *testing.T) {
	a := assert.New(t)
	a.True(zero.Eq(Number{}))
	a.True(num(1.5, 3).Eq(MustParse("1.5K")))
	a.False(num(1.5, 3).Eq(num(1.5, 4)))
	a.False(num(1.5, 3).Eq(num(1.6, 3)))
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b Number
		res  int
	}{
		{zero, zero, 0},
		{zero, num(1, -100), -1},
		{num(1, -100), zero, 1},
		{num(1.5, 3), num(1.5, 3), 0},
		{num(1.5, 3), num(1.6, 3), -1},
		{num(9.9, 3), num(1.1, 4), -1},
		{num(1.1, 4), num(9.9, 3), 1},
		{num(1, -1), num(9, -2), 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.a.Cmp(test.b))
		})
	}
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n Number
		f float64
	}{
		{zero, 0},
		{num(5, 0), 5},
		{num(2, 6), 2e6},
		{num(1.5, -3), 1.5e-3},
		{num(1, 500), math.Inf(1)},
		{num(1, -500), 0},
		{num(1, MaxExponent), math.Inf(1)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f := test.n.Float64()
			if test.f == 0 || math.IsInf(test.f, 0) {
				a.Equal(test.f, f)
			} else {
				a.InEpsilon(test.f, f, 1e-15)
			}
		})
	}
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n   Number
		s   string
		err string
	}{
		{zero, "0", ""},
		{MustFromFloat64(12345), "12345", ""},
		{MustParse("1.5x10^30"), "1500000000000000000000000000000", ""},
		{num(1.5, -3), "0.0015", ""},
		{num(1, math.MaxInt32+1), "", "exponent out of range"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := test.n.Decimal()
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.s, d.String())
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}

func TestGoString(t *testing.T) {
	a := assert.New(t)
	a.Equal("2M {2, 6}", num(2, 6).GoString())
	a.Equal("0 {0, 0}", zero.GoString())
}

func BenchmarkMul(b *testing.B) {
	n0 := MustFromFloat64(123456789.0)
	n1 := MustFromFloat64(1234.0)

	for i := 0; i < b.N; i++ {
		n0.Mul(n1)
	}
}

func BenchmarkMulFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	d0 := decimal.NewFromFloat(123456789.0)
	d1 := decimal.NewFromFloat(1234.0)

	for i := 0; i < b.N; i++ {
		d0.Mul(d1)
	}
}

func BenchmarkShiftPower(b *testing.B) {
	n := MustFromFloat64(123456789.0)

	for i := 0; i < b.N; i++ {
		n = n.ShiftPower(1)
	}
}

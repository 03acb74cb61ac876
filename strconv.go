// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	mu "github.com/avdva/bignum/internal/mathutil"
	su "github.com/avdva/bignum/internal/strutil"
)

const (
	// expSep separates the mantissa and the exponent in Exponential format.
	expSep = "x10^"

	// digits after the delimeter.
	compactPlaces     = 1
	exponentialPlaces = 2
)

// Parse parses a string produced by Number.String().
// The format is detected automatically: strings containing "x10^" are parsed as
// Exponential, all others as Compact.
// On failure, a *NumberError is returned.
func Parse(s string) (Number, error) {
	prepared := su.Prepare(s)
	if strings.Contains(prepared, expSep) {
		return parseExponential(s, prepared)
	}
	return parseCompact(s, prepared)
}

// ParseFormat parses a string in the given format.
func ParseFormat(s string, f Format) (Number, error) {
	prepared := su.Prepare(s)
	if f == Exponential {
		return parseExponential(s, prepared)
	}
	return parseCompact(s, prepared)
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// parseCompact parses `decimal [suffix]`.
func parseCompact(input, s string) (Number, error) {
	prefix, suffix := su.SplitSuffix(s)
	tier := 0
	if len(suffix) > 0 {
		t, found := Tier(suffix)
		if !found {
			return zero, newNumberError(UnknownSuffix, input, fmt.Errorf("%q", suffix))
		}
		tier = t
	}
	mant, err := su.ParseDecimal(prefix)
	if err != nil {
		return zero, newNumberError(InvalidMantissa, input, err)
	}
	return normalize(mant, int64(tier*tierWidth)), nil
}

// parseExponential parses `decimal "x10^" integer`.
func parseExponential(input, s string) (Number, error) {
	idx := strings.Index(s, expSep)
	if idx < 0 {
		return zero, newNumberError(InvalidExponent, input, fmt.Errorf("missing %q", expSep))
	}
	mant, err := su.ParseDecimal(s[:idx])
	if err != nil {
		return zero, newNumberError(InvalidMantissa, input, err)
	}
	exp, err := su.ParseInteger(s[idx+len(expSep):])
	if err != nil {
		return zero, newNumberError(InvalidExponent, input, err)
	}
	if exp < MinExponent || exp > MaxExponent {
		return zero, newNumberError(InvalidExponent, input, errRange)
	}
	return normalize(mant, exp), nil
}

// String returns the number in its display format.
func (n Number) String() string {
	m, e := split(n)
	if n.DisplayFormat() == Compact {
		return formatCompact(m, e)
	}
	// 9.996x10^-1 rounds to 1, which is compact.
	if e == -1 && su.FormatFixed(m, exponentialPlaces) == "10" {
		return formatCompact(1, 0)
	}
	return formatExponential(m, e)
}

// Format implements fmt.Formatter.
// 's' and 'v' write the display format, 'e' always writes the exponential form,
// 'f' and 'g' write the approximate float64 value.
func (n Number) Format(fs fmt.State, c rune) {
	switch c {
	case 's':
		io.WriteString(fs, n.String())
	case 'v':
		if fs.Flag('#') {
			io.WriteString(fs, n.GoString())
			return
		}
		io.WriteString(fs, n.String())
	case 'e':
		io.WriteString(fs, formatExponential(split(n)))
	case 'f', 'g':
		io.WriteString(fs, strconv.FormatFloat(n.Float64(), byte(c), -1, 64))
	default:
		fmt.Fprintf(fs, "%%!%c(bignum.Number=%s)", c, n.String())
	}
}

// formatCompact expects 0 <= exp < CompactLimit.
func formatCompact(mant float64, exp int64) string {
	if mant == 0 {
		return "0"
	}
	tier, pos := mu.FloorDivMod(exp, tierWidth)
	scaled := mant * mu.Pow10(int(pos))
	s := su.FormatFixed(scaled, compactPlaces)
	// rounding 999.96 gives 1000, which belongs to the next tier,
	// or to the exponential format after the last tier.
	if s == "1000" {
		if int(tier)+1 < len(suffixes) {
			return "1" + suffixes[tier+1]
		}
		return formatExponential(1, (tier+1)*tierWidth)
	}
	return s + suffixes[tier]
}

func formatExponential(mant float64, exp int64) string {
	s := su.FormatFixed(mant, exponentialPlaces)
	if s == "10" {
		if exp == MaxExponent {
			// the carry would leave the exponent range.
			s = "9.99"
		} else {
			s, exp = "1", exp+1
		}
	}
	return s + expSep + strconv.FormatInt(exp, 10)
}

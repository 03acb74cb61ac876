// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strutil implements the textual grammar shared by number codecs:
//
//	decimal := digits ["." digits]
//	integer := ["-"] digits
package strutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	delim = '.'
)

var (
	// ErrEmpty is returned for inputs without any significant symbols.
	ErrEmpty = errors.New("empty input")
	// ErrNegative is returned for decimals with a leading minus sign.
	ErrNegative = errors.New("negative value")
	// ErrRange is returned for integers that do not fit int64.
	ErrRange = errors.New("value out of range")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Prepare cleans the string from surrounding spaces and a pair of double quotes.
func Prepare(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// ParseDecimal parses a non-negative decimal without an exponent part.
// Positions in returned errors start from 1.
func ParseDecimal(s string) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}
	if s[0] == '-' {
		return 0, ErrNegative
	}
	delimPos, digits := -1, 0
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
		case r == delim:
			if delimPos >= 0 {
				return 0, newPosError("unexpected delimeter", i+1)
			}
			if digits == 0 {
				return 0, newPosError("missing integer part", i+1)
			}
			delimPos = i
		default:
			return 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i+1)
		}
	}
	if delimPos == len(s)-1 {
		return 0, newPosError("missing fractional part", len(s))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// only a range error is possible here.
		return 0, ErrRange
	}
	return f, nil
}

// ParseInteger parses an optionally negative integer.
// Positions in returned errors start from 1.
func ParseInteger(s string) (int64, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
		if len(digits) == 0 {
			return 0, newPosError("missing digits", 1)
		}
	}
	offset := len(s) - len(digits)
	for i, r := range digits {
		if r < '0' || r > '9' {
			return 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), offset+i+1)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrRange
	}
	return v, nil
}

// SplitSuffix splits s into a prefix and a maximal run of trailing letters.
func SplitSuffix(s string) (prefix, suffix string) {
	i := len(s)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(r) {
			break
		}
		i -= size
	}
	return s[:i], s[i:]
}

// FormatFixed formats f with at most 'places' digits after the delimeter,
// omitting trailing zeros and a trailing delimeter.
func FormatFixed(f float64, places int) string {
	return TrimZeros(strconv.FormatFloat(f, 'f', places, 64))
}

// TrimZeros removes trailing zeros after the delimeter, and the delimeter itself,
// if nothing is left after it.
func TrimZeros(s string) string {
	if strings.IndexByte(s, delim) < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, string(delim))
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

// Format is a textual representation of a number.
type Format int

const (
	// Compact renders a number with a magnitude suffix, like "12.3K".
	Compact Format = iota
	// Exponential renders a number as "<mantissa>x10^<exponent>", like "1.5x10^30".
	Exponential
)

const (
	// digits per magnitude tier.
	tierWidth = 3
	// CompactLimit is the first exponent, which can't be rendered in Compact format.
	CompactLimit = len(suffixes) * tierWidth
)

// suffixes is the magnitude table. Tier i covers exponents [3i, 3i+3).
// No suffix is a prefix of another one.
var suffixes = [...]string{"", "K", "M", "B", "T", "QD", "QN", "SX", "SP"}

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case Compact:
		return "compact"
	case Exponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// Suffix returns the magnitude suffix for the tier.
// Tier 0 has an empty suffix.
func Suffix(tier int) (string, bool) {
	if tier < 0 || tier >= len(suffixes) {
		return "", false
	}
	return suffixes[tier], true
}

// Tier returns the tier of the magnitude suffix.
func Tier(suffix string) (int, bool) {
	for i, s := range suffixes {
		if s == suffix {
			return i, true
		}
	}
	return 0, false
}

func formatFor(exp int64) Format {
	if exp >= 0 && exp < int64(CompactLimit) {
		return Compact
	}
	return Exponential
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all numbers are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces numbers as display strings, like `"12.3K"`.
	// Digits beyond the display precision are lost.
	JSONModeString = iota
	// JSONModeME marshals numbers with mantissa and exponent, like `{"m":1.2345,"e":4}`.
	JSONModeME
	// JSONModeCompact chooses JSONModeString, if the display string
	// parses back into the same number, and JSONModeME otherwise.
	JSONModeCompact
)

var (
	jsonParts = []string{`{"m":`, `,"e":`, `}`}
)

// MarshalJSON marshals the number according to current JSONMode.
func (n Number) MarshalJSON() ([]byte, error) {
	return n.toJSON(JSONMode), nil
}

func (n Number) toJSON(mode int) []byte {
	switch mode {
	case JSONModeME:
		var builder strings.Builder
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatFloat(n.mant, 'g', -1, 64))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatInt(n.exp, 10))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		if parsed, err := Parse(n.String()); err == nil && parsed.Eq(n) {
			return n.toJSON(JSONModeString)
		}
		return n.toJSON(JSONModeME)
	default:
		return []byte(strconv.Quote(n.String()))
	}
}

// UnmarshalJSON unmarshals a string or a mantissa/exponent object into a number.
func (n *Number) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		d := struct {
			M float64
			E int64
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		value, err := FromMantAndExp(d.M, d.E)
		if err != nil {
			return err
		}
		*n = value
	default:
		value, err := Parse(string(data))
		if err != nil {
			return err
		}
		*n = value
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = value
	return nil
}

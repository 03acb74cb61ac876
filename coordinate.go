// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"fmt"
	"strings"
)

// Coordinate is a 2-D point of two numbers, like a camera or a grid position.
type Coordinate struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}

// NewCoordinate returns a new Coordinate.
func NewCoordinate(x, y Number) Coordinate {
	return Coordinate{X: x, Y: y}
}

// ParseCoordinate parses a string produced by Coordinate.String().
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Coordinate{}, fmt.Errorf("bad coordinate %q: missing parentheses", s)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("bad coordinate %q: expected two components", s)
	}
	x, err := Parse(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := Parse(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("bad y: %w", err)
	}
	return NewCoordinate(x, y), nil
}

// String returns string representation of a coordinate, like "(12.3K, 5)".
func (c Coordinate) String() string {
	var builder strings.Builder
	builder.WriteRune('(')
	builder.WriteString(c.X.String())
	builder.WriteString(", ")
	builder.WriteString(c.Y.String())
	builder.WriteRune(')')
	return builder.String()
}

// Mul multiplies both components by n.
func (c Coordinate) Mul(n Number) Coordinate {
	return NewCoordinate(c.X.Mul(n), c.Y.Mul(n))
}

// MulFloat64 multiplies both components by f.
// f must be a non-negative finite number, MulFloat64 panics otherwise.
func (c Coordinate) MulFloat64(f float64) Coordinate {
	return c.Mul(MustFromFloat64(f))
}

// ShiftPower multiplies both components by 10^delta.
func (c Coordinate) ShiftPower(delta int) Coordinate {
	return NewCoordinate(c.X.ShiftPower(delta), c.Y.ShiftPower(delta))
}

// Eq returns true, if both components are equal.
func (c Coordinate) Eq(other Coordinate) bool {
	return c.X.Eq(other.X) && c.Y.Eq(other.Y)
}

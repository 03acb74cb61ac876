// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package viewport keeps the state of a zoomable graph view:
// its origin and the world distance between two neighbouring grid ticks.
// The state is a plain value owned by the caller's event loop.
package viewport

import (
	"fmt"
	"math"

	"github.com/avdva/bignum"
)

const (
	// DefaultTicks is the number of labeled grid ticks on each axis.
	DefaultTicks = 5
)

// Viewport is a view of the graph plane.
type Viewport struct {
	// Origin is the world position of the view's center.
	Origin bignum.Coordinate `json:"origin"`
	// Scale is the world distance between two neighbouring ticks.
	Scale bignum.Number `json:"scale"`
	// Ticks is the number of labeled ticks.
	Ticks int `json:"ticks"`
}

// New returns a viewport centered at zero with a unit scale.
// If ticks is not positive, DefaultTicks is used.
func New(ticks int) *Viewport {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	return &Viewport{
		Scale: bignum.MustFromFloat64(1),
		Ticks: ticks,
	}
}

// Zoom zooms in by 'steps' powers of ten. Negative steps zoom out.
func (v *Viewport) Zoom(steps int) {
	v.Scale = v.Scale.DecreasePower(steps)
}

// ZoomBy divides the scale by factor, so that factor > 1 zooms in.
func (v *Viewport) ZoomBy(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return fmt.Errorf("bad zoom factor %v", factor)
	}
	inv, err := bignum.FromFloat64(1 / factor)
	if err != nil {
		return fmt.Errorf("bad zoom factor %v: %w", factor, err)
	}
	v.Scale = v.Scale.Mul(inv)
	return nil
}

// SetOrigin moves the view's center.
func (v *Viewport) SetOrigin(origin bignum.Coordinate) {
	v.Origin = origin
}

// Labels returns the labels of the ticks, which are Scale*k for k in [1, Ticks].
func (v *Viewport) Labels() []string {
	labels := make([]string, 0, v.Ticks)
	for k := 1; k <= v.Ticks; k++ {
		labels = append(labels, v.Scale.MulFloat64(float64(k)).String())
	}
	return labels
}

// ScaleLabel returns a text describing the current scale.
func (v *Viewport) ScaleLabel() string {
	return "1 tick = " + v.Scale.String()
}

// String returns a short description of the viewport.
func (v *Viewport) String() string {
	return fmt.Sprintf("origin %s, %s", v.Origin, v.ScaleLabel())
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/avdva/bignum"
	"github.com/avdva/bignum/viewport"
)

var (
	zoomArgs = struct {
		Ticks  int
		Steps  int
		Factor float64
		Origin string
	}{
		Ticks:  viewport.DefaultTicks,
		Factor: 1,
	}

	Zoom = &cobra.Command{
		Use:   "zoom",
		Short: "Zooms a graph viewport and prints its tick labels.",
		Long: "Starts with a unit scale viewport, zooms it in by --steps powers of ten,\n" +
			"then by --factor, and prints the resulting tick labels.",
		Example: "bignum zoom --steps=-6 --ticks 3\n" +
			"bignum zoom --origin \"(2M, 5)\" --factor 0.5",
		Args: cobra.NoArgs,
		RunE: commandZoom,
	}
)

type zoomResult struct {
	Viewport *viewport.Viewport `json:"viewport"`
	Labels   []string           `json:"labels"`
}

func commandZoom(cmd *cobra.Command, args []string) error {
	v := viewport.New(zoomArgs.Ticks)
	if len(zoomArgs.Origin) > 0 {
		origin, err := bignum.ParseCoordinate(zoomArgs.Origin)
		if err != nil {
			return Error.Wrap(err)
		}
		v.SetOrigin(origin)
	}
	v.Zoom(zoomArgs.Steps)
	if zoomArgs.Factor != 1 {
		if err := v.ZoomBy(zoomArgs.Factor); err != nil {
			return Error.Wrap(err)
		}
	}
	glog.V(1).Infof("viewport: %v", v)
	result := zoomResult{
		Viewport: v,
		Labels:   v.Labels(),
	}
	return write(cmd, result, v.String()+"\n"+strings.Join(result.Labels, " "))
}

func init() {
	Zoom.Flags().IntVar(&zoomArgs.Ticks, "ticks", zoomArgs.Ticks, "Number of labeled ticks.")
	Zoom.Flags().IntVar(&zoomArgs.Steps, "steps", 0, "Powers of ten to zoom in by. Negative values zoom out.")
	Zoom.Flags().Float64Var(&zoomArgs.Factor, "factor", zoomArgs.Factor, "Factor to zoom in by after the steps.")
	Zoom.Flags().StringVar(&zoomArgs.Origin, "origin", "", "Center of the viewport, like \"(2M, 5)\".")

	Root.AddCommand(Zoom)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/avdva/bignum"
)

// maxDecimalExp limits the exponent of numbers printed as plain decimals.
const maxDecimalExp = 64

// Inspect prints the internals of a number.
var Inspect = &cobra.Command{
	Use:     "inspect <number>",
	Short:   "Prints the mantissa, exponent, format and approximate value of a number.",
	Example: "bignum inspect 12.3K",
	Args:    cobra.ExactArgs(1),
	RunE:    commandInspect,
}

type inspection struct {
	Value    bignum.Number `json:"value"`
	Mantissa float64       `json:"mantissa"`
	Exponent int64         `json:"exponent"`
	Format   string        `json:"format"`
	Approx   string        `json:"approx"`
	Decimal  string        `json:"decimal,omitempty"`
}

func inspect(n bignum.Number) (_ inspection, err error) {
	defer Error.WrapP(&err)
	result := inspection{
		Value:    n,
		Mantissa: n.Mantissa(),
		Exponent: n.Exponent(),
		Format:   n.DisplayFormat().String(),
		Approx:   approx(n),
	}
	if e := n.Exponent(); e >= -maxDecimalExp && e <= maxDecimalExp {
		d, err := n.Decimal()
		if err != nil {
			return result, err
		}
		result.Decimal = d.String()
	}
	return result, nil
}

// approx returns a human readable float approximation of n.
func approx(n bignum.Number) string {
	f := n.Float64()
	switch {
	case n.IsZero():
		return "0"
	case f == 0 || math.IsInf(f, 0):
		return "out of float64 range"
	case f >= 1 && f < 1e15:
		return humanize.Commaf(f)
	default:
		return humanize.SIWithDigits(f, 3, "")
	}
}

func (i inspection) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "value:    %s\n", i.Value)
	fmt.Fprintf(&b, "mantissa: %v\n", i.Mantissa)
	fmt.Fprintf(&b, "exponent: %d\n", i.Exponent)
	fmt.Fprintf(&b, "format:   %s\n", i.Format)
	fmt.Fprintf(&b, "approx:   %s", i.Approx)
	if len(i.Decimal) > 0 {
		fmt.Fprintf(&b, "\ndecimal:  %s", i.Decimal)
	}
	return b.String()
}

func commandInspect(cmd *cobra.Command, args []string) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	result, err := inspect(numbers[0])
	if err != nil {
		return err
	}
	return write(cmd, result, result.String())
}

func init() {
	Root.AddCommand(Inspect)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"math"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/avdva/bignum"
)

var (
	mulArgs = struct {
		Scalar float64
	}{
		Scalar: 1,
	}

	Mul = &cobra.Command{
		Use:   "mul <number>...",
		Short: "Prints the product of numbers.",
		Example: "bignum mul 2M 3K\n" +
			"bignum mul 1.5x10^30 --scalar 0.5",
		Args: cobra.MinimumNArgs(1),
		RunE: commandMul,
	}
)

func commandMul(cmd *cobra.Command, args []string) error {
	if !(mulArgs.Scalar >= 0) || math.IsInf(mulArgs.Scalar, 1) {
		return Error.New("bad scalar %v", mulArgs.Scalar)
	}
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	result := bignum.MustFromFloat64(1)
	for _, n := range numbers {
		result = result.Mul(n)
	}
	result = result.MulFloat64(mulArgs.Scalar)
	glog.V(1).Infof("product of %d numbers is %#v", len(numbers), result)
	return write(cmd, result, result.String())
}

func init() {
	Mul.Flags().Float64Var(&mulArgs.Scalar, "scalar", mulArgs.Scalar, "Plain number to multiply the product by.")

	Root.AddCommand(Mul)
}

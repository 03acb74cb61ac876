// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var (
	shiftArgs = struct {
		By int
	}{}

	Shift = &cobra.Command{
		Use:   "shift <number> --by <delta>",
		Short: "Multiplies a number by a power of ten.",
		Long: "Multiplies a number by 10^delta. A negative delta divides the number.\n" +
			"Exponents beyond the supported range saturate or become zero.",
		Example: "bignum shift 5 --by 29\n" +
			"bignum shift 12.3K --by=-3",
		Args: cobra.ExactArgs(1),
		RunE: commandShift,
	}
)

func commandShift(cmd *cobra.Command, args []string) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	result := numbers[0].ShiftPower(shiftArgs.By)
	glog.V(1).Infof("%#v shifted by %d is %#v", numbers[0], shiftArgs.By, result)
	return write(cmd, result, result.String())
}

func init() {
	Shift.Flags().IntVar(&shiftArgs.By, "by", 0, "Power of ten to multiply by.")

	Root.AddCommand(Shift)
}

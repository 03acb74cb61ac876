// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/avdva/bignum"
)

var (
	parseArgs = struct {
		Format string
	}{}

	formats = map[string]bignum.Format{
		"compact":     bignum.Compact,
		"exponential": bignum.Exponential,
	}

	Parse = &cobra.Command{
		Use:   "parse <number>...",
		Short: "Parses numbers and prints them in their display form.",
		Example: "bignum parse 12345 15x10^3 0.05x10^3\n" +
			"bignum parse --format exponential 1.5x10^30",
		Args: cobra.MinimumNArgs(1),
		RunE: commandParse,
	}
)

func commandParse(cmd *cobra.Command, args []string) error {
	var numbers []bignum.Number
	if len(parseArgs.Format) == 0 {
		var err error
		if numbers, err = parseNumbers(args); err != nil {
			return err
		}
	} else {
		f, found := formats[parseArgs.Format]
		if !found {
			return Error.New("unknown format %q", parseArgs.Format)
		}
		for _, arg := range args {
			n, err := bignum.ParseFormat(arg, f)
			if err != nil {
				return Error.Wrap(err)
			}
			numbers = append(numbers, n)
		}
	}
	strs := make([]string, 0, len(numbers))
	for _, n := range numbers {
		strs = append(strs, n.String())
	}
	return write(cmd, numbers, strings.Join(strs, "\n"))
}

func init() {
	Parse.Flags().StringVar(&parseArgs.Format, "format", "", "Expected format of all numbers: compact or exponential. Detected automatically if empty.")

	Root.AddCommand(Parse)
}

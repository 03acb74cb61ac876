// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package command implements the commands of the bignum tool.
package command

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/avdva/bignum"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var (
	// Error is the class of all errors returned by the commands.
	Error = errs.Class("bignum")

	// settings merges flags with BIGNUM_* environment variables.
	settings = viper.New()

	rootArgs = struct {
		Output   string
		JSONMode string
	}{
		Output:   outputText,
		JSONMode: "compact",
	}

	jsonModes = map[string]int{
		"string":  bignum.JSONModeString,
		"me":      bignum.JSONModeME,
		"compact": bignum.JSONModeCompact,
	}

	Root = &cobra.Command{
		Use:   "bignum",
		Short: "bignum parses, renders and scales numbers of unbounded magnitude.",
		Long: "`bignum` works with numbers stored as a mantissa and a power of ten.\n\n" +
			"Numbers are written either in compact form with a magnitude suffix, like `12.3K` or `4.5QD`,\n" +
			"or in exponential form, like `1.5x10^30`.\n" +
			"Settings can also be passed with BIGNUM_OUTPUT and BIGNUM_JSON_MODE environment variables.",
		SilenceUsage:      true,
		PersistentPreRunE: preRun,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}
)

func preRun(cmd *cobra.Command, args []string) error {
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return Error.Wrap(err)
	}
	modeName := settings.GetString("json-mode")
	mode, found := jsonModes[modeName]
	if !found {
		return Error.New("unknown json mode %q", modeName)
	}
	bignum.JSONMode = mode
	switch output := settings.GetString("output"); output {
	case outputText, outputJSON:
	default:
		return Error.New("unknown output %q", output)
	}
	glog.V(1).Infof("running %s with output=%s, json-mode=%s", cmd.Name(), settings.GetString("output"), modeName)
	return nil
}

// write prints v as json, or text otherwise.
func write(cmd *cobra.Command, v interface{}, text string) error {
	if settings.GetString("output") == outputJSON {
		data, err := json.Marshal(v)
		if err != nil {
			return Error.Wrap(err)
		}
		text = string(data)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return Error.Wrap(err)
}

// parseNumbers parses all arguments as numbers.
func parseNumbers(args []string) ([]bignum.Number, error) {
	result := make([]bignum.Number, 0, len(args))
	for _, arg := range args {
		n, err := bignum.Parse(arg)
		if err != nil {
			return nil, Error.Wrap(err)
		}
		glog.V(2).Infof("parsed %q into %#v", arg, n)
		result = append(result, n)
	}
	return result, nil
}

func init() {
	settings.SetEnvPrefix("BIGNUM")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	registerFlags(Root.PersistentFlags())
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&rootArgs.Output, "output", rootArgs.Output, "Output format: text or json.")
	fs.StringVar(&rootArgs.JSONMode, "json-mode", rootArgs.JSONMode, "Number encoding in json output: string, me or compact.")
	// glog flags.
	fs.AddGoFlagSet(flag.CommandLine)
}

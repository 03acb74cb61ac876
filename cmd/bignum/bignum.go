// Copyright 2020 Aleksandr Demakin. All rights reserved.

// bignum is a command line tool for numbers of unbounded magnitude.
package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/avdva/bignum/cmd/bignum/command"
)

func main() {
	defer glog.Flush()
	if err := command.Root.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}

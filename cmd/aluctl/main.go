// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/avdva/alu/cmd/aluctl/command"
)

func main() {
	root := command.New()
	// glog registers its flags on the standard flag set.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// glog complains about logging before flag.Parse otherwise.
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := root.Execute(); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

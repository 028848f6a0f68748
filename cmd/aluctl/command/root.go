// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package command implements the aluctl command tree.
package command

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/avdva/alu"
)

const (
	keyWidth        = "width"
	keyMethod       = "method"
	keyFormat       = "format"
	keyVerboseTrace = "verbose-trace"

	envPrefix = "ALUCTL"
)

// New returns the root command. Every call returns an independent command tree with its own configuration.
func New() *cobra.Command {
	var configFile string
	v := viper.New()
	root := &cobra.Command{
		Use:          "aluctl",
		Short:        "aluctl runs binary arithmetic algorithms step by step.",
		Long:         "aluctl multiplies and divides two's complement registers and adds floating point numbers, printing every step of the algorithm.\nNegative operands must follow '--'.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd.Flags(), configFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.Int(keyWidth, 1, "operand width in bytes")
	flags.Bool(keyVerboseTrace, true, "print every step of the algorithm")

	root.AddCommand(newMulCommand(v), newDivCommand(v), newFloatCommand(v, "fadd", false), newFloatCommand(v, "fsub", true))
	return root
}

// loadConfig binds fs to v. Flags set explicitly win over environment variables, which win over the config file.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		glog.V(1).Infof("using config %s", v.ConfigFileUsed())
	}
	if width := v.GetInt(keyWidth); width < 1 {
		return fmt.Errorf("bad width %d: %w", width, alu.ErrWidth)
	}
	return nil
}

// parseRegister parses a decimal or a 0x-prefixed integer into a register of 'width' bytes.
func parseRegister(s string, width int) (*alu.Register, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("bad integer %q", s)
	}
	r := alu.NewRegister(width).SetBig(v)
	// unsigned values that fill the whole register, like 0xff for one byte, are accepted too.
	if r.Signed().Cmp(v) != 0 && r.Number().Cmp(v) != 0 {
		return nil, fmt.Errorf("%s does not fit into %d bytes: %w", s, width, alu.ErrTruncation)
	}
	return r, nil
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avdva/alu/fpu"
)

func newFloatCommand(v *viper.Viper, name string, sub bool) *cobra.Command {
	op, short := "+", "Adds two floating point numbers"
	if sub {
		op, short = "-", "Subtracts two floating point numbers"
	}
	cmd := &cobra.Command{
		Use:   name + " <x> <y>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := fpu.ParseFormat(v.GetString(keyFormat))
			if err != nil {
				return err
			}
			x, err := parseFloat(format, args[0])
			if err != nil {
				return err
			}
			y, err := parseFloat(format, args[1])
			if err != nil {
				return err
			}
			yd := y.Decimal()
			if sub {
				y = y.Negate()
			}
			sum, res, err := fpu.Add(x, y)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := writeTrace(w, v, res, "mantissa"); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s %s %s = %s [%s]\n", x.Decimal(), op, yd, sum.Decimal(), sum)
			return err
		},
	}
	cmd.Flags().String(keyFormat, fpu.F1.Name, "floating point format: F1 or F2")
	return cmd
}

func parseFloat(f fpu.Format, s string) (*fpu.Float, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", s, err)
	}
	return fpu.FromDecimal(f, d)
}

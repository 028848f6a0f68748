// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avdva/alu"
	"github.com/avdva/alu/render"
)

func newMulCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul <multiplicand> <multiplier>",
		Short: "Multiplies two registers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := alu.ParseMethod(v.GetString(keyMethod))
			if err != nil {
				return err
			}
			width := v.GetInt(keyWidth)
			a, err := parseRegister(args[0], width)
			if err != nil {
				return err
			}
			b, err := parseRegister(args[1], width)
			if err != nil {
				return err
			}
			res, err := alu.Multiply(a, b, method)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := writeTrace(w, v, res, "product"); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s * %s = %s\n", a, b, res.Product())
			return err
		},
	}
	cmd.Flags().String(keyMethod, alu.Booth.String(), "multiplication method: correction, booth or radix4")
	return cmd
}

func newDivCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "div <dividend> <divider>",
		Short: "Divides a double-width dividend by a divider",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width := v.GetInt(keyWidth)
			dividend, err := parseRegister(args[0], 2*width)
			if err != nil {
				return err
			}
			divider, err := parseRegister(args[1], width)
			if err != nil {
				return err
			}
			res, err := alu.Divide(dividend, divider)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := writeTrace(w, v, res, "quotient", "remainder"); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s / %s = %s, remainder %s\n", dividend, divider, res.Quotient(), res.Remainder())
			return err
		},
	}
}

func writeTrace(w io.Writer, v *viper.Viper, res *alu.Result, names ...string) error {
	if !v.GetBool(keyVerboseTrace) {
		return nil
	}
	return render.WriteTrace(w, res, names...)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package render prints registers and operation traces for humans.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/avdva/alu"
)

// Binary returns the bits of r in byte groups, with a '|' between the halves.
func Binary(r *alu.Register) string {
	var sb strings.Builder
	bytes := r.Bytes()
	for i, b := range bytes {
		if i > 0 {
			if len(bytes)%2 == 0 && i == len(bytes)/2 {
				sb.WriteString(" | ")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}

// WriteTrace writes the steps of an operation to w, one table per step,
// followed by the registers the operation produced.
// Names of the result registers are taken from 'names', missing ones are numbered.
func WriteTrace(w io.Writer, res *alu.Result, names ...string) error {
	ew := &errWriter{w: w}
	for _, step := range res.Steps {
		if step.Title != "" {
			ew.printf("%s\n", strings.ToUpper(step.Title))
		}
		for _, c := range step.Comments {
			ew.printf("  %s\n", c)
		}
		if len(step.Operands) > 0 {
			table := newTable(ew)
			for _, op := range step.Operands {
				table.Append(row(op.Name, op.Value, op.Comment))
			}
			table.Render()
		}
		ew.printf("\n")
	}
	if len(res.Registers) > 0 {
		table := newTable(ew)
		for i, r := range res.Registers {
			name := fmt.Sprintf("result %d", i+1)
			if i < len(names) {
				name = names[i]
			}
			table.Append(row(name, r, ""))
		}
		table.Render()
	}
	return ew.err
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Operand", "Binary", "Unsigned", "Signed", "Comment"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	return table
}

func row(name string, r *alu.Register, comment string) []string {
	return []string{name, Binary(r), r.Number().String(), r.Signed().String(), comment}
}

// errWriter remembers the first error and skips all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	var n int
	n, ew.err = ew.w.Write(p)
	return n, ew.err
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(ew, format, args...)
}

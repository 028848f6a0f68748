// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import "fmt"

// Operand is a named snapshot of a register taken while an algorithm runs.
type Operand struct {
	Name    string
	Value   *Register
	Comment string
}

// Step is a single step of an algorithm.
// The last operand of a step is its intermediate result.
type Step struct {
	Title    string
	Comments []string
	Operands []Operand
}

// NewStep returns a step with the given title.
func NewStep(title string) *Step {
	return &Step{Title: title}
}

// Comment appends a formatted comment to the step.
func (s *Step) Comment(format string, args ...interface{}) *Step {
	s.Comments = append(s.Comments, fmt.Sprintf(format, args...))
	return s
}

// Record appends a snapshot of r to the step.
func (s *Step) Record(name string, r *Register, comment string) *Step {
	s.Operands = append(s.Operands, Operand{Name: name, Value: r.Snapshot(), Comment: comment})
	return s
}

// Last returns the intermediate result of the step, if any.
func (s *Step) Last() (Operand, bool) {
	if len(s.Operands) == 0 {
		return Operand{}, false
	}
	return s.Operands[len(s.Operands)-1], true
}

// Result holds the steps of an operation and the registers it produced.
type Result struct {
	Steps     []*Step
	Registers []*Register
}

func (res *Result) addStep(s *Step) *Step {
	res.Steps = append(res.Steps, s)
	return s
}

// Product returns the result of a multiplication.
func (res *Result) Product() *Register {
	return res.register(0)
}

// Quotient returns the quotient of a division.
func (res *Result) Quotient() *Register {
	return res.register(0)
}

// Remainder returns the remainder of a division.
func (res *Result) Remainder() *Register {
	return res.register(1)
}

func (res *Result) register(i int) *Register {
	if i >= len(res.Registers) {
		return nil
	}
	return res.Registers[i]
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// Method selects a multiplication algorithm.
type Method int

const (
	// WithCorrection is the shift/add algorithm with a final sign correction.
	WithCorrection Method = iota
	// Booth is Booth's radix-2 algorithm.
	Booth
	// BoothRadix4 is Booth's algorithm processing two multiplier bits per step.
	BoothRadix4
)

var methodNames = [...]string{
	WithCorrection: "correction",
	Booth:          "booth",
	BoothRadix4:    "radix4",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod returns a method by its name. The name is case insensitive.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Multiply returns a*b computed with method m.
// a and b must have the same width, the product is twice as wide.
// Operands are not modified.
func Multiply(a, b *Register, m Method) (*Result, error) {
	switch m {
	case WithCorrection:
		return MultiplyWithCorrection(a, b)
	case Booth:
		return MultiplyBooth(a, b)
	case BoothRadix4:
		return MultiplyRadix4(a, b)
	default:
		return nil, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}
}

// prepareMultiplication checks the operands and returns a copy of the multiplicand
// and a double-width register with the multiplier in its low half.
func prepareMultiplication(m Method, a, b *Register) (multiplicand, product *Register, err error) {
	if a.Width() != b.Width() {
		return nil, nil, newWidthError(m.String()+" multiplication", a.Width(), b.Width())
	}
	glog.V(1).Infof("multiply %s * %s, method %s, width %d", a, b, m, a.Width())
	product = NewRegister(2 * a.Width())
	if err := product.SetLowHalf(b); err != nil {
		return nil, nil, err
	}
	return a.Snapshot(), product, nil
}

// shiftSum shifts the accumulator right after 'op' was added to its high half.
// 'sign' is the sign of the high half before the addition, 'carry' is the carry of the addition.
// The bit shifted in is the sign of the exact sum, so the accumulator never overflows.
func shiftSum(r *Register, sign, opSign, carry Bit) {
	r.ShiftRight(sign ^ opSign ^ carry)
}

func mustNotFail(err error) {
	if err != nil {
		panic(fmt.Sprintf("internal error: %v", err))
	}
}

func stepTitle(i int) string {
	return fmt.Sprintf("step %d", i)
}

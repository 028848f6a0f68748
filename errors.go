// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import (
	"errors"
	"fmt"
)

var (
	// ErrWidth is returned when operand widths are incompatible.
	ErrWidth = errors.New("incompatible register width")
	// ErrTruncation is returned when an operand does not fit the destination
	// and truncation was not allowed.
	ErrTruncation = errors.New("operand does not fit")
	// ErrDivisionByZero is returned when the divider is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDivisionOverflow is returned when the quotient does not fit the divider width.
	ErrDivisionOverflow = errors.New("quotient overflow")
	// ErrUnknownMethod is returned for an unsupported multiplication method.
	ErrUnknownMethod = errors.New("unknown multiplication method")
)

// WidthError describes a width mismatch. It unwraps to ErrWidth.
type WidthError struct {
	Op   string
	Want int
	Got  int
}

func newWidthError(op string, want, got int) *WidthError {
	return &WidthError{Op: op, Want: want, Got: got}
}

func (we *WidthError) Error() string {
	return fmt.Sprintf("%s: %v: want %d bytes, got %d", we.Op, ErrWidth, we.Want, we.Got)
}

func (we *WidthError) Unwrap() error {
	return ErrWidth
}

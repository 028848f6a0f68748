// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fpu implements floating point numbers stored as a sign, a biased exponent (characteristic),
// and a mantissa held in an alu.Register.
// Arithmetic is done with the register primitives, the same way the alu package does integer math.
package fpu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCharacteristicRange is returned when the characteristic does not fit the format.
	ErrCharacteristicRange = errors.New("characteristic out of range")
	// ErrMantissaRange is returned when a fraction has more significant bits than the format allows.
	ErrMantissaRange = errors.New("fraction out of range")
	// ErrFormatMismatch is returned when operands have different formats.
	ErrFormatMismatch = errors.New("format mismatch")
	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("unknown format")
)

// Format describes a floating point layout.
type Format struct {
	Name string
	// BitsUsed is the number of mantissa bits stored.
	BitsUsed int
	// DigitWidth is the number of bits in a digit. The base of the exponent is 2^DigitWidth.
	DigitWidth int
	// HiddenOne means that the leading 1 of a normalized mantissa is not stored.
	HiddenOne bool
	// CharacteristicBits is the width of the characteristic.
	CharacteristicBits int
	// CharacteristicOffset is the bias of the exponent.
	CharacteristicOffset int
}

var (
	// F1 is a hexadecimal format: three hex digits of mantissa, 7-bit characteristic.
	F1 = Format{
		Name:                 "F1",
		BitsUsed:             12,
		DigitWidth:           4,
		CharacteristicBits:   7,
		CharacteristicOffset: 64,
	}
	// F2 is a binary format with a hidden one: 11 stored bits of mantissa, 8-bit characteristic.
	F2 = Format{
		Name:                 "F2",
		BitsUsed:             11,
		DigitWidth:           1,
		HiddenOne:            true,
		CharacteristicBits:   8,
		CharacteristicOffset: 128,
	}
)

// ParseFormat returns a predefined format by its name.
func ParseFormat(name string) (Format, error) {
	for _, f := range []Format{F1, F2} {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Base returns the base of the exponent.
func (f Format) Base() int {
	return 1 << f.DigitWidth
}

// FractionBits returns the number of significant bits including the hidden one.
func (f Format) FractionBits() int {
	if f.HiddenOne {
		return f.BitsUsed + 1
	}
	return f.BitsUsed
}

// Digits returns the number of digits in a mantissa with the hidden one recovered.
func (f Format) Digits() int {
	return (f.FractionBits() + f.DigitWidth - 1) / f.DigitWidth
}

func (f Format) minCharacteristic() int {
	// with a hidden one, a zero characteristic and a zero mantissa mean zero.
	if f.HiddenOne {
		return 1
	}
	return 0
}

func (f Format) maxCharacteristic() int {
	return 1<<f.CharacteristicBits - 1
}

func (f Format) checkCharacteristic(c int) error {
	if c < f.minCharacteristic() || c > f.maxCharacteristic() {
		return fmt.Errorf("%s: characteristic %d, exponent %d: %w", f.Name, c, c-f.CharacteristicOffset, ErrCharacteristicRange)
	}
	return nil
}

func (f Format) validate() {
	if f.DigitWidth < 1 || f.FractionBits() > mantissaBits-f.DigitWidth {
		panic(fmt.Sprintf("bad format %s: %d-bit digits, %d fraction bits", f.Name, f.DigitWidth, f.FractionBits()))
	}
}

func (f Format) String() string {
	return f.Name
}

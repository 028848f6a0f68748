// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpu

import (
	"fmt"

	"github.com/avdva/alu"
)

const (
	mantissaWidth = 2
	mantissaBits  = mantissaWidth * alu.ByteLength
	// guardWidth is the number of bytes appended below the pad while mantissas are added.
	guardWidth = 1
)

// Mantissa is a fixed point fraction 0.xxx stored in a register.
// Significant bits are left-justified, the rest of the register is a zero pad,
// which keeps the bits shifted out during exponent alignment.
// For formats with a hidden one the leading 1 is not stored
// until RecoverHiddenOne is called.
type Mantissa struct {
	format    Format
	reg       *alu.Register
	recovered bool
}

// NewMantissa returns a mantissa holding 'bits', the stored significant bits of the format.
func NewMantissa(f Format, bits uint64) (*Mantissa, error) {
	f.validate()
	if bits >= 1<<f.BitsUsed {
		return nil, fmt.Errorf("%s: %#x has more than %d bits: %w", f, bits, f.BitsUsed, ErrMantissaRange)
	}
	reg := alu.NewRegister(mantissaWidth)
	reg.Set(int64(bits << (mantissaBits - f.BitsUsed)))
	return &Mantissa{format: f, reg: reg}, nil
}

// fractionMantissa returns a mantissa with the hidden one already recovered, holding a fraction
// of FractionBits bits.
func fractionMantissa(f Format, fraction uint64) (*Mantissa, error) {
	f.validate()
	bits := f.FractionBits()
	if fraction >= 1<<bits {
		return nil, fmt.Errorf("%s: %#x has more than %d bits: %w", f, fraction, bits, ErrMantissaRange)
	}
	reg := alu.NewRegister(mantissaWidth)
	reg.Set(int64(fraction << (mantissaBits - bits)))
	return &Mantissa{format: f, reg: reg, recovered: f.HiddenOne}, nil
}

// Format returns the format of m.
func (m *Mantissa) Format() Format {
	return m.format
}

// Bits returns the stored significant bits.
// If the hidden one is recovered, it is included as well.
func (m *Mantissa) Bits() uint64 {
	return m.reg.Uint64() >> (m.reg.Bits() - m.significantBits())
}

// Register returns a copy of the underlying register.
func (m *Mantissa) Register() *alu.Register {
	return m.reg.Snapshot()
}

// Copy returns a deep copy of m.
func (m *Mantissa) Copy() *Mantissa {
	return &Mantissa{format: m.format, reg: m.reg.Snapshot(), recovered: m.recovered}
}

// IsZero returns true if all bits of m are zero.
func (m *Mantissa) IsZero() bool {
	return m.reg.IsZero()
}

// IsRecovered returns true if the hidden one is explicitly stored.
func (m *Mantissa) IsRecovered() bool {
	return m.recovered
}

func (m *Mantissa) significantBits() int {
	if m.recovered {
		return m.format.FractionBits()
	}
	return m.format.BitsUsed
}

// ShiftLeft shifts m by one digit to the left.
func (m *Mantissa) ShiftLeft() {
	for i := 0; i < m.format.DigitWidth; i++ {
		m.reg.ShiftLeft(0)
	}
}

// ShiftRight shifts m by one digit to the right.
// 'fill' is shifted in first, so it becomes the lowest bit of the leading digit.
func (m *Mantissa) ShiftRight(fill alu.Bit) {
	for i := 0; i < m.format.DigitWidth; i++ {
		m.reg.ShiftRight(fill)
		fill = 0
	}
}

// alignRight shifts m right by n digits. Every bit shifted out of the register
// is or-ed into the lowest bit, so a value that lost bits is never exact.
func (m *Mantissa) alignRight(n int) {
	var sticky alu.Bit
	for i := 0; i < n*m.format.DigitWidth && !m.reg.IsZero(); i++ {
		sticky |= m.reg.ShiftRight(0)
	}
	if sticky == 1 {
		m.reg.SetBit(0, 1)
	}
}

// widen returns a copy of m with guard bytes appended below the pad.
func (m *Mantissa) widen() *Mantissa {
	bytes := append(m.reg.Bytes(), make([]alu.Byte, guardWidth)...)
	reg := alu.NewRegister(len(bytes))
	if err := reg.SetBytes(bytes); err != nil {
		panic(err)
	}
	return &Mantissa{format: m.format, reg: reg, recovered: m.recovered}
}

// narrow drops the guard bytes. The bits below the format must be already truncated.
func (m *Mantissa) narrow() {
	reg := alu.NewRegister(mantissaWidth)
	if err := reg.SetBytes(m.reg.Bytes()[:mantissaWidth]); err != nil {
		panic(err)
	}
	m.reg = reg
}

// leadingDigit returns the value of the most significant digit.
func (m *Mantissa) leadingDigit() alu.Byte {
	return m.reg.Byte(0).Slice(alu.ByteLength-m.format.DigitWidth, alu.ByteLength)
}

// IsNormalized returns true if the leading digit is not zero, or if m is zero.
// A mantissa with a hidden one is normalized by definition until the one is recovered.
func (m *Mantissa) IsNormalized() bool {
	if m.format.HiddenOne && !m.recovered {
		return true
	}
	return m.IsZero() || m.leadingDigit() != 0
}

// Normalize shifts m to the left until its leading digit is not zero.
// Returns the number of digits shifted, which must be subtracted from the exponent.
func (m *Mantissa) Normalize() int {
	if m.IsZero() || (m.format.HiddenOne && !m.recovered) {
		return 0
	}
	var count int
	for ; count < m.format.Digits() && m.leadingDigit() == 0; count++ {
		m.ShiftLeft()
	}
	return count
}

// RecoverHiddenOne stores the hidden one explicitly. It's a no-op for formats without it.
func (m *Mantissa) RecoverHiddenOne() {
	if !m.format.HiddenOne || m.recovered {
		return
	}
	m.reg.ShiftRight(1)
	m.recovered = true
}

// HideOne removes the leading one stored by RecoverHiddenOne.
// Panics if m is not normalized.
func (m *Mantissa) HideOne() {
	if !m.format.HiddenOne || !m.recovered {
		return
	}
	if out := m.reg.ShiftLeft(0); out != 1 {
		panic(fmt.Sprintf("%s: hiding a zero leading bit of an unnormalized mantissa", m.format))
	}
	m.recovered = false
}

// Truncate clears the pad bits below the significant bits.
func (m *Mantissa) Truncate() {
	for i := 0; i < m.reg.Bits()-m.significantBits(); i++ {
		m.reg.SetBit(i, 0)
	}
}

// Add adds o to m and returns the carry.
func (m *Mantissa) Add(o *Mantissa) alu.Bit {
	carry, err := m.reg.Add(o.reg)
	if err != nil {
		panic(err)
	}
	return carry
}

// Subtract subtracts o from m. If o is greater than m, m is replaced
// with the magnitude of the difference and 1 is returned.
func (m *Mantissa) Subtract(o *Mantissa) alu.Bit {
	borrow, err := m.reg.Subtract(o.reg)
	if err != nil {
		panic(err)
	}
	if borrow == 1 {
		m.reg.Neg()
	}
	return borrow
}

func (m *Mantissa) String() string {
	return fmt.Sprintf("%0*b", m.significantBits(), m.Bits())
}

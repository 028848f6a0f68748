// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package alu models a fixed-width binary arithmetic unit.
// A Register is a sequence of Bytes holding a two's complement integer,
// and the multiplication and division algorithms are built
// on top of its carry-propagating add, subtract and shift primitives.
// Every algorithm returns a Result with the steps it took.
package alu

import (
	"fmt"
	"math/big"

	mu "github.com/avdva/alu/internal/mathutil"
)

// Register is a fixed-width two's complement word, most significant byte first.
// A register exclusively owns its bytes. Halves are returned as copies,
// and are written back only through the owning register.
type Register struct {
	bytes []Byte
}

// NewRegister returns a zeroed register of 'width' bytes.
// Panics if width is not positive.
func NewRegister(width int) *Register {
	if width < 1 {
		panic(fmt.Sprintf("bad register width %d", width))
	}
	return &Register{bytes: make([]Byte, width)}
}

// RegisterOf returns a register of 'width' bytes holding v modulo 2^(8*width).
func RegisterOf(width int, v int64) *Register {
	return NewRegister(width).Set(v)
}

// Width returns the number of bytes in r.
func (r *Register) Width() int {
	return len(r.bytes)
}

// Bits returns the number of bits in r.
func (r *Register) Bits() int {
	return len(r.bytes) * ByteLength
}

func (r *Register) center() int {
	return len(r.bytes) / 2
}

// Set stores v modulo 2^(8*width).
func (r *Register) Set(v int64) *Register {
	u := uint64(v)
	for i := len(r.bytes) - 1; i >= 0; i-- {
		r.bytes[i] = Byte(u)
		u = uint64(int64(u) >> ByteLength) // keep the sign for wide registers
	}
	return r
}

// SetBig stores v modulo 2^(8*width). Negative values are stored in two's complement.
func (r *Register) SetBig(v *big.Int) *Register {
	m := new(big.Int).Lsh(big.NewInt(1), uint(r.Bits()))
	u := new(big.Int).Mod(v, m) // Mod is euclidean, so u is never negative.
	raw := u.Bytes()
	for i := range r.bytes {
		r.bytes[i] = 0
	}
	for i := 1; i <= len(raw); i++ {
		r.bytes[len(r.bytes)-i] = Byte(raw[len(raw)-i])
	}
	return r
}

// SetBytes copies 'bytes' into r, aligned to the least significant byte.
// A shorter input is sign-extended. A longer one is an error.
func (r *Register) SetBytes(bytes []Byte) error {
	if len(bytes) > len(r.bytes) {
		return newWidthError("set", len(r.bytes), len(bytes))
	}
	for i := range r.bytes {
		r.bytes[i] = extendedAt(bytes, len(r.bytes)-i)
	}
	return nil
}

// Bytes returns a copy of the register's bytes, most significant first.
func (r *Register) Bytes() []Byte {
	return append([]Byte(nil), r.bytes...)
}

// Byte returns the byte at 'index', where 0 is the most significant byte.
func (r *Register) Byte(index int) Byte {
	return r.bytes[index]
}

// Snapshot returns a deep copy of r.
func (r *Register) Snapshot() *Register {
	return &Register{bytes: r.Bytes()}
}

// Sign returns the sign bit.
func (r *Register) Sign() Bit {
	return r.bytes[0].Sign()
}

// Bit returns the bit at 'index', where 0 is the least significant bit of the register.
func (r *Register) Bit(index int) Bit {
	r.checkBitIndex(index)
	return r.bytes[len(r.bytes)-1-index/ByteLength].Bit(index % ByteLength)
}

// SetBit sets the bit at 'index' to v.
func (r *Register) SetBit(index int, v Bit) {
	r.checkBitIndex(index)
	r.bytes[len(r.bytes)-1-index/ByteLength].SetBit(index%ByteLength, v)
}

func (r *Register) checkBitIndex(index int) {
	if index < 0 || index >= r.Bits() {
		panic(fmt.Sprintf("register has only %d bits, trying to access %d", r.Bits(), index))
	}
}

// IsZero returns true if all bits are zero.
func (r *Register) IsZero() bool {
	for _, b := range r.bytes {
		if b != 0 {
			return false
		}
	}
	return true
}

func (r *Register) checkHalves(op string) error {
	if len(r.bytes)%2 != 0 {
		return newWidthError(op, len(r.bytes)+1, len(r.bytes))
	}
	return nil
}

// HighHalf returns a copy of the most significant half of r.
// Panics if the width is odd.
func (r *Register) HighHalf() *Register {
	if err := r.checkHalves("high half"); err != nil {
		panic(err)
	}
	return &Register{bytes: append([]Byte(nil), r.bytes[:r.center()]...)}
}

// LowHalf returns a copy of the least significant half of r.
// Panics if the width is odd.
func (r *Register) LowHalf() *Register {
	if err := r.checkHalves("low half"); err != nil {
		panic(err)
	}
	return &Register{bytes: append([]Byte(nil), r.bytes[r.center():]...)}
}

// SetHighHalf overwrites the most significant half of r with h.
func (r *Register) SetHighHalf(h *Register) error {
	if err := r.checkHalves("set high half"); err != nil {
		return err
	}
	if h.Width() != r.center() {
		return newWidthError("set high half", r.center(), h.Width())
	}
	copy(r.bytes[:r.center()], h.bytes)
	return nil
}

// SetLowHalf overwrites the least significant half of r with l.
func (r *Register) SetLowHalf(l *Register) error {
	if err := r.checkHalves("set low half"); err != nil {
		return err
	}
	if l.Width() != r.center() {
		return newWidthError("set low half", r.center(), l.Width())
	}
	copy(r.bytes[r.center():], l.bytes)
	return nil
}

// Add adds o to r and returns the carry out of the most significant bit.
// A narrower o is sign-extended. A wider o is an error.
func (r *Register) Add(o *Register) (Bit, error) {
	return r.binOp("add", o, Byte.Add)
}

// Subtract subtracts o from r and returns the borrow.
// A narrower o is sign-extended. A wider o is an error.
func (r *Register) Subtract(o *Register) (Bit, error) {
	return r.binOp("subtract", o, Byte.Subtract)
}

func (r *Register) binOp(name string, o *Register, op ByteOp) (Bit, error) {
	if o.Width() > r.Width() {
		return 0, newWidthError(name, r.Width(), o.Width())
	}
	carry, result := PerformBinOp(r.bytes, o.bytes, op)
	r.bytes = result
	return carry, nil
}

// AddHigh adds o to the most significant half of r, leaving the low half intact.
// See SubtractHigh for the rules applied to wide operands.
func (r *Register) AddHigh(o *Register, allowTruncation bool) (Bit, error) {
	return r.highOp("add high", o, allowTruncation, Byte.Add)
}

// SubtractHigh subtracts o from the most significant half of r.
// If o is wider than the half, its excess bytes must be a sign extension of the rest,
// otherwise the value can't be represented and ErrTruncation is returned.
// With allowTruncation the excess bytes are silently dropped.
func (r *Register) SubtractHigh(o *Register, allowTruncation bool) (Bit, error) {
	return r.highOp("subtract high", o, allowTruncation, Byte.Subtract)
}

func (r *Register) highOp(name string, o *Register, allowTruncation bool, op ByteOp) (Bit, error) {
	if err := r.checkHalves(name); err != nil {
		return 0, err
	}
	half := r.center()
	operand := o.bytes
	if excess := len(operand) - half; excess > 0 {
		if !allowTruncation && !fits(operand, half) {
			return 0, fmt.Errorf("%s: %d-byte operand %s: %w", name, o.Width(), o, ErrTruncation)
		}
		operand = operand[excess:]
	}
	carry, result := PerformBinOp(r.bytes[:half], operand, op)
	copy(r.bytes[:half], result)
	return carry, nil
}

// fits checks that a two's complement value stored in 'bytes' is representable in 'width' bytes.
func fits(bytes []Byte, width int) bool {
	excess := len(bytes) - width
	if excess <= 0 {
		return true
	}
	ext := make([]uint8, excess)
	for i := range ext {
		ext[i] = uint8(bytes[i])
	}
	return mu.IsSignExtension(ext, uint8(bytes[excess]))
}

// Narrow returns a copy of r with 'width' bytes.
// The dropped most significant bytes must be a sign extension, otherwise ErrTruncation is returned.
func (r *Register) Narrow(width int) (*Register, error) {
	if width >= r.Width() {
		result := NewRegister(width)
		if err := result.SetBytes(r.bytes); err != nil {
			return nil, err
		}
		return result, nil
	}
	if !fits(r.bytes, width) {
		return nil, fmt.Errorf("narrow %s to %d bytes: %w", r, width, ErrTruncation)
	}
	return &Register{bytes: append([]Byte(nil), r.bytes[r.Width()-width:]...)}, nil
}

// ShiftLeft shifts r by one bit to the left. 'fill' becomes the least significant bit.
// Returns the bit shifted out of the register.
func (r *Register) ShiftLeft(fill Bit) Bit {
	for i := len(r.bytes) - 1; i >= 0; i-- {
		fill = r.bytes[i].ShiftLeft(fill)
	}
	return fill
}

// ShiftRight shifts r by one bit to the right. 'fill' becomes the sign bit.
// Returns the bit shifted out of the register.
func (r *Register) ShiftRight(fill Bit) Bit {
	for i := range r.bytes {
		fill = r.bytes[i].ShiftRight(fill)
	}
	return fill
}

// ShiftRightArithmetic shifts r to the right, replicating the sign bit.
func (r *Register) ShiftRightArithmetic() Bit {
	return r.ShiftRight(r.Sign())
}

// Not inverts all bits of r.
func (r *Register) Not() *Register {
	for i := range r.bytes {
		r.bytes[i] = r.bytes[i].Not()
	}
	return r
}

// Neg replaces r with its two's complement negation.
func (r *Register) Neg() *Register {
	r.Not()
	carry := Bit(1)
	for i := len(r.bytes) - 1; i >= 0 && carry == 1; i-- {
		carry, r.bytes[i] = r.bytes[i].Add(0, carry)
	}
	return r
}

// Number returns the unsigned value of r.
func (r *Register) Number() *big.Int {
	result := new(big.Int)
	for _, b := range r.bytes {
		result.Lsh(result, ByteLength)
		result.Or(result, big.NewInt(int64(b)))
	}
	return result
}

// Signed returns the two's complement value of r.
func (r *Register) Signed() *big.Int {
	result := r.Number()
	if r.Sign() == 1 {
		result.Sub(result, new(big.Int).Lsh(big.NewInt(1), uint(r.Bits())))
	}
	return result
}

// Int64 returns the signed value of r.
// If it does not fit into int64, the result is undefined.
func (r *Register) Int64() int64 {
	return r.Signed().Int64()
}

// Uint64 returns the unsigned value of r.
// If it does not fit into uint64, the result is undefined.
func (r *Register) Uint64() uint64 {
	return r.Number().Uint64()
}

// Equal returns true if both registers have the same width and bits.
func (r *Register) Equal(o *Register) bool {
	if r.Width() != o.Width() {
		return false
	}
	for i, b := range r.bytes {
		if o.bytes[i] != b {
			return false
		}
	}
	return true
}

// String returns the signed decimal value of r.
func (r *Register) String() string {
	return r.Signed().String()
}

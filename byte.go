// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import (
	"fmt"
	"strconv"

	mu "github.com/avdva/alu/internal/mathutil"
)

const (
	// ByteLength is the number of bits in a Byte.
	ByteLength = 8
	// ByteMax is the largest unsigned value of a Byte.
	ByteMax = 1<<ByteLength - 1

	halfLength = ByteLength / 2
	halfMask   = 1<<halfLength - 1
)

// Bit is a single binary digit, either 0 or 1.
type Bit uint8

// Byte is an 8-bit cell. Bit 0 is the least significant one.
// All arithmetic is modulo 256, carry and borrow are returned explicitly.
type Byte uint8

// ByteOp is a byte-wise operation with a carry chain, see PerformBinOp.
type ByteOp func(a, b Byte, carry Bit) (Bit, Byte)

func bitOf(v bool) Bit {
	if v {
		return 1
	}
	return 0
}

func checkBitIndex(index int) {
	if index < 0 || index >= ByteLength {
		panic(fmt.Sprintf("byte has only %d bits, trying to access %d", ByteLength, index))
	}
}

// Add returns b + other + carry and the carry out of the most significant bit.
func (b Byte) Add(other Byte, carry Bit) (Bit, Byte) {
	sum := uint(b) + uint(other) + uint(carry&1)
	return bitOf(sum > ByteMax), Byte(sum)
}

// Subtract returns b - other - borrow and the borrow into the most significant bit.
func (b Byte) Subtract(other Byte, borrow Bit) (Bit, Byte) {
	diff := int(b) - int(other) - int(borrow&1)
	return bitOf(diff < 0), Byte(diff)
}

// ShiftLeft shifts b by one bit to the left, 'fill' becomes bit 0.
// Returns the bit shifted out.
func (b *Byte) ShiftLeft(fill Bit) Bit {
	out := b.Sign()
	*b = *b<<1 | Byte(fill&1)
	return out
}

// ShiftRight shifts b by one bit to the right, 'fill' becomes bit 7.
// Returns the bit shifted out.
func (b *Byte) ShiftRight(fill Bit) Bit {
	out := Bit(*b & 1)
	*b = *b>>1 | Byte(fill&1)<<(ByteLength-1)
	return out
}

// ShiftRightArithmetic shifts b to the right, replicating the sign bit.
func (b *Byte) ShiftRightArithmetic() Bit {
	return b.ShiftRight(b.Sign())
}

// Sign returns the most significant bit.
func (b Byte) Sign() Bit {
	return Bit(mu.SignOf(uint8(b)))
}

// Bit returns the bit at 'index', where 0 is the least significant bit.
func (b Byte) Bit(index int) Bit {
	checkBitIndex(index)
	return Bit(b>>index) & 1
}

// SetBit sets the bit at 'index' to 'v'.
func (b *Byte) SetBit(index int, v Bit) {
	checkBitIndex(index)
	mask := Byte(1) << index
	if v&1 == 1 {
		*b |= mask
	} else {
		*b &^= mask
	}
}

// Not returns the bitwise complement of b.
func (b Byte) Not() Byte {
	return ^b
}

// HighHalf returns the value of the four most significant bits.
func (b Byte) HighHalf() Byte {
	return b >> halfLength
}

// LowHalf returns the value of the four least significant bits.
func (b Byte) LowHalf() Byte {
	return b & halfMask
}

// Swap exchanges the high and the low halves.
func (b Byte) Swap() Byte {
	return b.LowHalf()<<halfLength | b.HighHalf()
}

// Slice extracts bits [lo, hi) and returns them shifted down to bit 0.
func (b Byte) Slice(lo, hi int) Byte {
	if lo < 0 || hi > ByteLength || lo >= hi {
		panic(fmt.Sprintf("bad slice [%d, %d) of a byte", lo, hi))
	}
	return b >> lo & (1<<(hi-lo) - 1)
}

// Absolute returns the magnitude of b, treated as a signed value.
// The magnitude of -128 is 128, which is still representable as an unsigned Byte.
func (b Byte) Absolute() Byte {
	if b.Sign() == 1 {
		return -b
	}
	return b
}

// String returns 8 binary digits.
func (b Byte) String() string {
	s := strconv.FormatUint(uint64(b), 2)
	return zeros[:ByteLength-len(s)] + s
}

const zeros = "00000000"

// PerformBinOp applies 'op' to a and b byte by byte, starting from the least significant byte.
// Both sequences are most significant byte first. The shorter one is sign-extended.
// Returns the carry out of the most significant byte and the result, which has the length of the longer input.
func PerformBinOp(a, b []Byte, op ByteOp) (Bit, []Byte) {
	n := max(len(a), len(b))
	result := make([]Byte, n)
	var carry Bit
	for i := 1; i <= n; i++ {
		carry, result[n-i] = op(extendedAt(a, i), extendedAt(b, i), carry)
	}
	return carry, result
}

// extendedAt returns the i-th byte from the end of a sign-extended sequence.
func extendedAt(bytes []Byte, i int) Byte {
	if i <= len(bytes) {
		return bytes[len(bytes)-i]
	}
	if len(bytes) == 0 {
		return 0
	}
	return Byte(mu.SignFill(uint8(bytes[0].Sign())))
}

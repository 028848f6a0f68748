// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteAdd(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y   Byte
		carry  Bit
		sum    Byte
		outBit Bit
	}{
		{88, 36, 0, 124, 0},
		{200, 100, 0, 44, 1},
		{255, 0, 1, 0, 1},
		{255, 255, 1, 255, 1},
		{0, 0, 0, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c, s := test.x.Add(test.y, test.carry)
			a.Equal(test.sum, s)
			a.Equal(test.outBit, c)
		})
	}
}

func TestByteSubtract(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y   Byte
		borrow Bit
		diff   Byte
		outBit Bit
	}{
		{5, 3, 0, 2, 0},
		{3, 5, 0, 254, 1},
		{0, 0, 1, 255, 1},
		{128, 1, 0, 127, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b, d := test.x.Subtract(test.y, test.borrow)
			a.Equal(test.diff, d)
			a.Equal(test.outBit, b)
		})
	}
}

func TestByteShift(t *testing.T) {
	a := assert.New(t)
	b := Byte(0x81)
	a.Equal(Bit(1), b.ShiftLeft(0))
	a.Equal(Byte(0x02), b)
	a.Equal(Bit(0), b.ShiftLeft(1))
	a.Equal(Byte(0x05), b)

	b = 0x03
	a.Equal(Bit(1), b.ShiftRight(1))
	a.Equal(Byte(0x81), b)

	b = 0x82
	a.Equal(Bit(0), b.ShiftRightArithmetic())
	a.Equal(Byte(0xc1), b)
	b = 0x41
	a.Equal(Bit(1), b.ShiftRightArithmetic())
	a.Equal(Byte(0x20), b)
}

func TestByteBits(t *testing.T) {
	a := assert.New(t)
	b := Byte(0xb4)
	a.Equal(Bit(1), b.Sign())
	a.Equal(Bit(0), b.Bit(0))
	a.Equal(Bit(1), b.Bit(2))
	b.SetBit(0, 1)
	b.SetBit(7, 0)
	a.Equal(Byte(0x35), b)
	a.Equal(Byte(0xca), b.Not())
	a.Panics(func() { b.Bit(8) })
	a.Panics(func() { b.SetBit(-1, 1) })
}

func TestByteHalves(t *testing.T) {
	a := assert.New(t)
	b := Byte(0xa5)
	a.Equal(Byte(0xa), b.HighHalf())
	a.Equal(Byte(0x5), b.LowHalf())
	a.Equal(Byte(0x5a), b.Swap())
	a.Equal(Byte(5), Byte(0xb4).Slice(2, 5))
	a.Equal(Byte(0xb4), Byte(0xb4).Slice(0, 8))
	a.Panics(func() { b.Slice(3, 3) })
	a.Panics(func() { b.Slice(0, 9) })
}

func TestByteAbsolute(t *testing.T) {
	a := assert.New(t)
	a.Equal(Byte(1), Byte(0xff).Absolute())
	a.Equal(Byte(0x80), Byte(0x80).Absolute())
	a.Equal(Byte(5), Byte(5).Absolute())
}

func TestByteString(t *testing.T) {
	a := assert.New(t)
	a.Equal("00000101", Byte(5).String())
	a.Equal("11111111", Byte(255).String())
	a.Equal("00000000", Byte(0).String())
}

func TestPerformBinOp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y   []Byte
		op     ByteOp
		res    []Byte
		outBit Bit
	}{
		{[]Byte{0x01, 0xff}, []Byte{0x01}, Byte.Add, []Byte{0x02, 0x00}, 0},
		{[]Byte{0x00, 0x01}, []Byte{0xff}, Byte.Add, []Byte{0x00, 0x00}, 1},
		{[]Byte{0x7f}, []Byte{0x00, 0x01}, Byte.Add, []Byte{0x00, 0x80}, 0},
		{[]Byte{0x01, 0x00}, []Byte{0x01}, Byte.Subtract, []Byte{0x00, 0xff}, 0},
		{[]Byte{0x00, 0x00}, []Byte{0x01}, Byte.Subtract, []Byte{0xff, 0xff}, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c, res := PerformBinOp(test.x, test.y, test.op)
			a.Equal(test.res, res)
			a.Equal(test.outBit, c)
		})
	}
}

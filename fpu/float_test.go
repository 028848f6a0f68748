// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFloat(t *testing.T, f Format, fraction uint64, exp int, neg bool) *Float {
	v, err := NewFloat(f, fraction, exp, neg)
	require.NoError(t, err)
	return v
}

func TestNewFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f              Format
		fraction       uint64
		exp            int
		neg            bool
		characteristic int
		bits           uint64
		value          string
	}{
		{F1, 0x800, 0, false, 64, 0x800, "0.5"},
		{F1, 0x005, 0, false, 62, 0x500, "0.001220703125"},
		{F1, 0x100, 1, false, 65, 0x100, "1"},
		{F1, 0xfff, 2, true, 66, 0xfff, "-255.9375"},
		{F1, 0, 5, true, 0, 0, "0"},
		{F2, 0xc00, 0, false, 128, 0x400, "0.75"},
		{F2, 0x001, 0, false, 117, 0, "0.000244140625"},
		{F2, 0x800, 1, true, 129, 0, "-1"},
		{F2, 0, 0, false, 0, 0, "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := NewFloat(test.f, test.fraction, test.exp, test.neg)
			if !a.NoError(err) {
				return
			}
			a.Equal(test.characteristic, v.Characteristic)
			a.Equal(test.bits, v.Mantissa.Bits())
			a.Equal(test.value, v.Decimal().String())
			a.Equal(test.value == "0", v.IsZero())
			a.True(v.Mantissa.IsNormalized())
		})
	}
}

func TestNewFloatErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f        Format
		fraction uint64
		exp      int
		err      error
	}{
		{F1, 0x100, 64, ErrCharacteristicRange},
		{F1, 0x100, -65, ErrCharacteristicRange},
		{F1, 0x001, -63, ErrCharacteristicRange},
		{F2, 0x800, -128, ErrCharacteristicRange},
		{F2, 0x800, 128, ErrCharacteristicRange},
		{F1, 0x1000, 0, ErrMantissaRange},
		{F2, 0x1000, 0, ErrMantissaRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := NewFloat(test.f, test.fraction, test.exp, false)
			a.True(errors.Is(err, test.err), "%v", err)
		})
	}
}

func TestFloatAdd(t *testing.T) {
	a := assert.New(t)
	type operand struct {
		fraction uint64
		exp      int
		neg      bool
	}
	tests := []struct {
		f      Format
		x, y   operand
		result string
	}{
		{F1, operand{0x800, 0, false}, operand{0x400, 0, false}, "0.75"},
		{F1, operand{0xf00, 0, false}, operand{0x200, 0, false}, "1.0625"},
		{F1, operand{0x100, 1, false}, operand{0x800, 0, false}, "1.5"},
		{F1, operand{0x800, 0, false}, operand{0x100, 1, false}, "1.5"},
		{F1, operand{0x800, 0, false}, operand{0xc00, 0, true}, "-0.25"},
		{F1, operand{0x800, 0, true}, operand{0xc00, 0, false}, "0.25"},
		{F1, operand{0x800, 0, false}, operand{0x800, 0, true}, "0"},
		{F1, operand{0x800, 0, false}, operand{0x800, -10, false}, "0.5"},
		{F1, operand{0x800, 0, false}, operand{0x800, -10, true}, "0.499755859375"},
		{F1, operand{0x800, 0, false}, operand{0, 0, false}, "0.5"},
		{F1, operand{0, 0, false}, operand{0x800, 0, true}, "-0.5"},
		{F2, operand{0xc00, 0, false}, operand{0xc00, 0, false}, "1.5"},
		{F2, operand{0x800, 1, false}, operand{0x800, -1, false}, "1.25"},
		{F2, operand{0xc00, 0, false}, operand{0x800, 0, true}, "0.25"},
		{F2, operand{0x800, 0, false}, operand{0xc00, 0, true}, "-0.25"},
		{F2, operand{0xfff, 0, false}, operand{0x800, -12, true}, "0.99951171875"},
		{F2, operand{0x800, 0, true}, operand{0x800, 0, false}, "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := mustFloat(t, test.f, test.x.fraction, test.x.exp, test.x.neg)
			y := mustFloat(t, test.f, test.y.fraction, test.y.exp, test.y.neg)
			xs, ys := x.String(), y.String()
			sum, err := x.Add(y)
			if !a.NoError(err) {
				return
			}
			a.Equal(test.result, sum.Decimal().String())
			a.Equal(test.result == "0", sum.IsZero())
			a.True(sum.Mantissa.IsNormalized())
			a.False(sum.Mantissa.IsRecovered())
			a.Equal(xs, x.String(), "operands must not change")
			a.Equal(ys, y.String(), "operands must not change")
		})
	}
}

func TestFloatSub(t *testing.T) {
	a := assert.New(t)
	x := mustFloat(t, F1, 0x180, 1, false)
	y := mustFloat(t, F1, 0x800, 0, false)
	diff, err := x.Sub(y)
	if a.NoError(err) {
		a.Equal("1", diff.Decimal().String())
		a.Equal(65, diff.Characteristic)
	}
	diff, err = y.Sub(x)
	if a.NoError(err) {
		a.Equal("-1", diff.Decimal().String())
	}
	diff, err = x.Sub(x)
	if a.NoError(err) {
		a.True(diff.IsZero())
		a.False(diff.Neg)
		a.Equal(0, diff.Characteristic)
	}
}

func TestFloatSubTruncation(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f          Format
		xFraction  uint64
		xExp       int
		yFraction  uint64
		yExp       int
		result     string
		resultBits string
	}{
		{F1, 0x100, 0, 0x111, -3, "0.062469482421875", "0 0111111 111111111110"},
		{F1, 0x100, 0, 0x100, -10, "0.0624847412109375", "0 0111111 111111111111"},
		{F2, 0xfff, 0, 0x801, -5, "0.98388671875", "0 10000000 11110111110"},
		{F2, 0x800, 0, 0x800, -30, "0.4998779296875", "0 01111111 11111111111"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := mustFloat(t, test.f, test.xFraction, test.xExp, false)
			y := mustFloat(t, test.f, test.yFraction, test.yExp, false)
			diff, err := x.Sub(y)
			if a.NoError(err) {
				a.Equal(test.result, diff.Decimal().String())
				a.Equal(test.resultBits, diff.String())
			}
		})
	}
}

func TestFloatAddTruncatesTowardZero(t *testing.T) {
	a := assert.New(t)
	fractions := map[string][]uint64{
		F1.Name: {0x100, 0x111, 0x123, 0x800, 0xfff},
		F2.Name: {0x800, 0x801, 0xabc, 0xfff},
	}
	for _, f := range []Format{F1, F2} {
		maxDiff := 2*f.Digits() + 2
		for _, xf := range fractions[f.Name] {
			for _, yf := range fractions[f.Name] {
				for d := 0; d <= maxDiff; d++ {
					for _, neg := range []bool{false, true} {
						x := mustFloat(t, f, xf, 0, false)
						y := mustFloat(t, f, yf, -d, neg)
						exact := x.Decimal().Add(y.Decimal())
						sum, err := x.Add(y)
						if !a.NoError(err) {
							return
						}
						got := sum.Decimal()
						a.True(got.Abs().Cmp(exact.Abs()) <= 0, "%s: %s + %s: got %s, exact %s", f, x.Decimal(), y.Decimal(), got, exact)
						a.True(got.Sign()*exact.Sign() >= 0, "%s: %s + %s: got %s, exact %s", f, x.Decimal(), y.Decimal(), got, exact)
					}
				}
			}
		}
	}
}

func TestFloatAddErrors(t *testing.T) {
	a := assert.New(t)
	_, err := mustFloat(t, F1, 0x800, 0, false).Add(mustFloat(t, F2, 0x800, 0, false))
	a.True(errors.Is(err, ErrFormatMismatch))

	big := mustFloat(t, F1, 0xf00, 63, false)
	_, err = big.Add(big)
	a.True(errors.Is(err, ErrCharacteristicRange))

	small := mustFloat(t, F2, 0xc00, -127, false)
	_, err = small.Sub(mustFloat(t, F2, 0x800, -127, false))
	a.True(errors.Is(err, ErrCharacteristicRange))
}

func TestFloatAddSteps(t *testing.T) {
	a := assert.New(t)
	sum, res, err := Add(mustFloat(t, F1, 0xf00, 0, false), mustFloat(t, F1, 0x200, 0, false))
	if !a.NoError(err) {
		return
	}
	a.Equal(65, sum.Characteristic)
	a.Equal(uint64(0x110), sum.Mantissa.Bits())
	var titles []string
	for _, s := range res.Steps {
		titles = append(titles, s.Title)
	}
	if diff := cmp.Diff([]string{"alignment", "addition", "normalization"}, titles); diff != "" {
		t.Errorf("unexpected steps (-want +got):\n%s", diff)
	}
	a.Contains(res.Steps[1].Comments, "carry out, shift right by one digit")
	if a.Len(res.Registers, 1) {
		a.Equal(uint64(0x1100), res.Registers[0].Uint64())
	}
}

func TestFloatString(t *testing.T) {
	a := assert.New(t)
	a.Equal("0 1000000 100000000000", mustFloat(t, F1, 0x800, 0, false).String())
	a.Equal("1 10000000 10000000000", mustFloat(t, F2, 0xc00, 0, true).String())
}

func TestParseFormat(t *testing.T) {
	a := assert.New(t)
	f, err := ParseFormat("f2")
	a.NoError(err)
	a.Equal(F2, f)
	a.Equal(2, f.Base())
	a.Equal(12, f.Digits())
	a.Equal(16, F1.Base())
	a.Equal(3, F1.Digits())
	_, err = ParseFormat("F3")
	a.True(errors.Is(err, ErrUnknownFormat))
}

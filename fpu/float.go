// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpu

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"

	"github.com/avdva/alu"
	mu "github.com/avdva/alu/internal/mathutil"
)

// Float is a floating point number: (-1)^Neg * 0.Mantissa * Base^(Characteristic - Offset).
type Float struct {
	Format         Format
	Neg            bool
	Characteristic int
	Mantissa       *Mantissa
}

// Zero returns a zero of format f.
func Zero(f Format) *Float {
	m, err := NewMantissa(f, 0)
	if err != nil {
		panic(err)
	}
	return &Float{Format: f, Mantissa: m}
}

// NewFloat returns a normalized float equal to (-1)^neg * fraction/2^FractionBits * Base^exp.
// 'fraction' has FractionBits significant bits, so for formats with a hidden one
// it includes the leading one.
func NewFloat(f Format, fraction uint64, exp int, neg bool) (*Float, error) {
	m, err := fractionMantissa(f, fraction)
	if err != nil {
		return nil, err
	}
	if m.IsZero() {
		return Zero(f), nil
	}
	exp -= m.Normalize()
	m.Truncate()
	m.HideOne()
	c := exp + f.CharacteristicOffset
	if err := f.checkCharacteristic(c); err != nil {
		return nil, err
	}
	return &Float{Format: f, Neg: neg, Characteristic: c, Mantissa: m}, nil
}

// Exponent returns the unbiased exponent.
func (f *Float) Exponent() int {
	return f.Characteristic - f.Format.CharacteristicOffset
}

// IsZero returns true if f is zero.
func (f *Float) IsZero() bool {
	if f.Format.HiddenOne {
		return f.Characteristic == 0 && f.Mantissa.IsZero()
	}
	return f.Mantissa.IsZero()
}

// Copy returns a deep copy of f.
func (f *Float) Copy() *Float {
	return &Float{Format: f.Format, Neg: f.Neg, Characteristic: f.Characteristic, Mantissa: f.Mantissa.Copy()}
}

// Negate returns -f.
func (f *Float) Negate() *Float {
	result := f.Copy()
	if !result.IsZero() {
		result.Neg = !result.Neg
	}
	return result
}

// Add returns f + o.
func (f *Float) Add(o *Float) (*Float, error) {
	sum, _, err := Add(f, o)
	return sum, err
}

// Sub returns f - o.
func (f *Float) Sub(o *Float) (*Float, error) {
	return f.Add(o.Negate())
}

// Decimal returns the exact value of f.
func (f *Float) Decimal() decimal.Decimal {
	if f.IsZero() {
		return decimal.Zero
	}
	m := f.Mantissa.Copy()
	m.RecoverHiddenOne()
	coef, exp10 := mu.Pow2Decimal(m.reg.Number(), f.Format.DigitWidth*f.Exponent()-mantissaBits)
	if f.Neg {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, exp10)
}

// String returns the sign, the characteristic and the stored mantissa bits, like 0 1000000 100000000000.
func (f *Float) String() string {
	return fmt.Sprintf("%d %0*b %s", sign(f.Neg), f.Format.CharacteristicBits, f.Characteristic, f.Mantissa)
}

func sign(neg bool) alu.Bit {
	if neg {
		return 1
	}
	return 0
}

// Add returns a + b and the steps taken.
// Mantissas are aligned to the greater exponent, then added if signs are equal,
// or subtracted otherwise. The result is normalized and truncated to the format.
func Add(a, b *Float) (*Float, *alu.Result, error) {
	if a.Format != b.Format {
		return nil, nil, fmt.Errorf("%s + %s: %w", a.Format, b.Format, ErrFormatMismatch)
	}
	glog.V(1).Infof("float add %s + %s, format %s", a.Decimal(), b.Decimal(), a.Format)
	res := &alu.Result{}
	switch {
	case b.IsZero():
		return a.Copy(), res, nil
	case a.IsZero():
		return b.Copy(), res, nil
	}
	x, y := a.Copy(), b.Copy()
	x.Mantissa, y.Mantissa = x.Mantissa.widen(), y.Mantissa.widen()
	x.Mantissa.RecoverHiddenOne()
	y.Mantissa.RecoverHiddenOne()
	if x.Characteristic < y.Characteristic {
		x, y = y, x
	}

	step := alu.NewStep("alignment")
	diff := x.Characteristic - y.Characteristic
	step.Comment("exponent difference is %d", diff)
	// bits lost by y are kept as a sticky bit, so the truncated result never exceeds the exact one.
	y.Mantissa.alignRight(diff)
	step.Record("M1", x.Mantissa.reg, "greater exponent").
		Record("M2", y.Mantissa.reg, "shifted right")
	res.Steps = append(res.Steps, step)

	step = alu.NewStep("addition")
	if x.Neg == y.Neg {
		step.Comment("signs are equal, add mantissas")
		if carry := x.Mantissa.Add(y.Mantissa); carry == 1 {
			step.Comment("carry out, shift right by one digit")
			x.Mantissa.ShiftRight(carry)
			x.Characteristic++
		}
	} else {
		step.Comment("signs differ, subtract mantissas")
		if borrow := x.Mantissa.Subtract(y.Mantissa); borrow == 1 {
			step.Comment("borrow, the result has the sign of the second operand")
			x.Neg = !x.Neg
		}
	}
	step.Record("M", x.Mantissa.reg, "sum")
	res.Steps = append(res.Steps, step)
	glog.V(2).Infof("float add: mantissa sum %#x", x.Mantissa.reg.Uint64())

	if x.Mantissa.IsZero() {
		res.Steps = append(res.Steps, alu.NewStep("normalization").Comment("the result is zero"))
		return Zero(x.Format), res, nil
	}
	step = alu.NewStep("normalization")
	shift := x.Mantissa.Normalize()
	x.Characteristic -= shift
	x.Mantissa.Truncate()
	x.Mantissa.narrow()
	step.Comment("shifted left by %d digits", shift).Record("M", x.Mantissa.reg, "normalized mantissa")
	x.Mantissa.HideOne()
	res.Steps = append(res.Steps, step)
	if err := x.Format.checkCharacteristic(x.Characteristic); err != nil {
		return nil, res, err
	}
	glog.V(2).Infof("float add: result %s", x)
	res.Registers = []*alu.Register{x.Mantissa.Register()}
	return x, res, nil
}

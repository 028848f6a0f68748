// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import (
	"fmt"

	"github.com/golang/glog"
)

// Divide divides a double-width dividend by a single-width divider.
// The quotient is truncated toward zero, the remainder has the sign of the dividend.
// A divider as wide as the dividend is accepted if it fits into half of the width.
// Returns ErrDivisionByZero for a zero divider, and ErrDivisionOverflow
// if the quotient does not fit into the divider width.
// The most negative quotient, which the sign checks of the algorithm can't tell
// from an overflow, is verified separately.
// Operands are not modified.
func Divide(dividend, divider *Register) (*Result, error) {
	if dividend.Width()%2 != 0 {
		return nil, newWidthError("divide", dividend.Width()+1, dividend.Width())
	}
	width := dividend.Width() / 2
	d := divider.Snapshot()
	if d.Width() != width {
		if d.Width() != dividend.Width() {
			return nil, newWidthError("divide", width, d.Width())
		}
		var err error
		if d, err = d.Narrow(width); err != nil {
			return nil, fmt.Errorf("divide: %w", err)
		}
	}
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	glog.V(1).Infof("divide %s / %s, width %d", dividend, d, width)
	cur := dividend.Snapshot()
	sign := cur.Sign()
	res := &Result{}
	overflow := func() (*Result, error) {
		quotient, remainder, ok := mostNegativeQuotient(dividend, d)
		if !ok {
			return nil, fmt.Errorf("%s / %s: %w", dividend, d, ErrDivisionOverflow)
		}
		res.addStep(NewStep("most negative quotient")).
			Comment("dividend - quotient * divider is a valid remainder").
			Record("Q", quotient, "quotient").
			Record("R", remainder, "remainder")
		glog.V(2).Infof("divide: most negative quotient %s, remainder %s", quotient, remainder)
		res.Registers = []*Register{quotient, remainder}
		return res, nil
	}

	step := res.addStep(NewStep("trial"))
	if out := cur.ShiftLeft(0); out != cur.Sign() {
		step.Comment("the shift changed the sign of the dividend")
		return overflow()
	}
	divisionStep(step, cur, d, sign)
	if cur.Sign() == sign {
		step.Comment("the sign of the partial remainder did not change, the quotient does not fit")
		return overflow()
	}
	step.Comment("the sign of the partial remainder changed, division is possible")

	for i := 1; i < cur.Bits()/2; i++ {
		step := res.addStep(NewStep(stepTitle(i)))
		divisionStep(step, cur, d, cur.ShiftLeft(0))
		glog.V(2).Infof("%s: partial remainder %s, quotient %s", step.Title, cur.HighHalf(), cur.LowHalf())
	}

	quotient, remainder := cur.LowHalf(), cur.HighHalf()
	quotient.SetBit(0, 1)
	one := RegisterOf(width, 1)
	var err error
	if !remainder.IsZero() && remainder.Sign() != sign {
		step := res.addStep(NewStep("correction")).
			Comment("the remainder sign differs from the dividend sign")
		if remainder.Sign() == d.Sign() {
			_, err = remainder.Subtract(d)
			mustNotFail(err)
			_, err = quotient.Add(one)
			step.Record("B", d, "subtracted from the remainder")
		} else {
			_, err = remainder.Add(d)
			mustNotFail(err)
			_, err = quotient.Subtract(one)
			step.Record("B", d, "added to the remainder")
		}
		mustNotFail(err)
		step.Record("R", remainder, "remainder").Record("Q", quotient, "quotient")
	}
	if !remainder.IsZero() {
		if folded := foldRemainder(remainder, quotient, d); folded {
			res.addStep(NewStep("correction")).
				Comment("the remainder equals the divider").
				Record("R", remainder, "remainder").
				Record("Q", quotient, "quotient")
		}
	}
	if !quotient.IsZero() && quotient.Sign() != sign^d.Sign() {
		return overflow()
	}
	glog.V(2).Infof("divide: quotient %s, remainder %s", quotient, remainder)
	res.Registers = []*Register{quotient, remainder}
	return res, nil
}

// divisionStep subtracts the divider from the partial remainder if 'sign', the sign of
// the remainder before the shift, equals the divider sign, and adds it otherwise.
// The quotient bit is written into the least significant bit of cur.
func divisionStep(step *Step, cur, d *Register, sign Bit) {
	var err error
	if sign == d.Sign() {
		step.Comment("the signs of the partial remainder and the divider are equal, subtract")
		_, err = cur.SubtractHigh(d, false)
		step.Record("B", d, "subtracted from the high half")
	} else {
		step.Comment("the signs of the partial remainder and the divider differ, add")
		_, err = cur.AddHigh(d, false)
		step.Record("B", d, "added to the high half")
	}
	mustNotFail(err)
	cur.SetBit(0, bitOf(cur.Sign() == d.Sign()))
	step.Record("R", cur, "partial remainder and quotient")
}

// foldRemainder moves a remainder equal to +-d into the quotient.
func foldRemainder(remainder, quotient, d *Register) bool {
	one := RegisterOf(quotient.Width(), 1)
	diff := remainder.Snapshot()
	_, err := diff.Subtract(d)
	mustNotFail(err)
	if diff.IsZero() {
		_, err = quotient.Add(one)
		mustNotFail(err)
		remainder.Set(0)
		return true
	}
	sum := remainder.Snapshot()
	_, err = sum.Add(d)
	mustNotFail(err)
	if sum.IsZero() {
		_, err = quotient.Subtract(one)
		mustNotFail(err)
		remainder.Set(0)
		return true
	}
	return false
}

// mostNegativeQuotient checks whether dividend = q*d + r, where q is the most negative
// value of the divider width and r has the sign of the dividend and |r| < |d|.
func mostNegativeQuotient(dividend, d *Register) (quotient, remainder *Register, ok bool) {
	if dividend.Sign() == d.Sign() {
		return nil, nil, false
	}
	// -q*d = d << (bits - 1).
	product := NewRegister(dividend.Width())
	mustNotFail(product.SetBytes(d.Bytes()))
	for i := 0; i < d.Bits()-1; i++ {
		product.ShiftLeft(0)
	}
	r := dividend.Snapshot()
	_, err := r.Add(product)
	mustNotFail(err)
	if remainder, err = r.Narrow(d.Width()); err != nil {
		return nil, nil, false
	}
	if !remainder.IsZero() {
		if remainder.Sign() != dividend.Sign() {
			return nil, nil, false
		}
		sum := remainder.Snapshot()
		_, err = sum.Add(d)
		mustNotFail(err)
		if sum.IsZero() || sum.Sign() != d.Sign() {
			return nil, nil, false
		}
	}
	quotient = NewRegister(d.Width())
	quotient.SetBit(quotient.Bits()-1, 1)
	return quotient, remainder, true
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import (
	"fmt"

	"github.com/golang/glog"
)

// radix-4 action codes.
const (
	codeNone = iota
	codeAdd
	codeAddDouble
	codeSubtract
)

var codeNames = [...]string{
	codeNone:      "00: no operation",
	codeAdd:       "01: add the multiplicand",
	codeAddDouble: "10: add the doubled multiplicand",
	codeSubtract:  "11: subtract the multiplicand",
}

// MultiplyRadix4 multiplies a by b with Booth's radix-4 algorithm.
// Two multiplier bits are processed per step. The action code is
// the value of these bits plus a correction carried from the previous step.
// Partial products are accumulated with one guard byte per half, so the doubled
// multiplicand never overflows, and the guard bytes are dropped at the end.
func MultiplyRadix4(a, b *Register) (*Result, error) {
	if a.Width() != b.Width() {
		return nil, newWidthError(BoothRadix4.String()+" multiplication", a.Width(), b.Width())
	}
	glog.V(1).Infof("multiply %s * %s, method %s, width %d", a, b, BoothRadix4, a.Width())
	width := a.Width()
	multiplicand, err := a.Narrow(width + 1)
	mustNotFail(err)
	double := multiplicand.Snapshot()
	double.ShiftLeft(0)
	multiplier := b.Snapshot()
	acc := NewRegister(2 * (width + 1))
	res := &Result{}
	var corr, code Bit
	for i := 0; i < b.Bits()/2; i++ {
		step := res.addStep(NewStep(stepTitle(i + 1)))
		low := Bit(multiplier.Byte(width-1).Slice(0, 2))
		code = (low + corr) & 3
		multiplier.ShiftRightArithmetic()
		multiplier.ShiftRightArithmetic()
		step.Comment("multiplier bits %02b, correction %d, code %s", low, corr, codeNames[code])
		switch code {
		case codeAdd:
			_, err = acc.AddHigh(multiplicand, false)
			step.Record("A", multiplicand, "added to the high half")
		case codeAddDouble:
			_, err = acc.AddHigh(double, false)
			step.Record("2A", double, "added to the high half")
		case codeSubtract:
			_, err = acc.SubtractHigh(multiplicand, false)
			step.Record("A", multiplicand, "subtracted from the high half")
		}
		mustNotFail(err)
		acc.ShiftRightArithmetic()
		acc.ShiftRightArithmetic()
		step.Record("P", acc, "shifted right by two bits")
		corr = bitOf(code == codeSubtract || (code == codeNone && corr == 1))
		glog.V(2).Infof("%s: code %02b, partial product %s", step.Title, code, acc)
	}
	if corr != b.Sign() {
		step := res.addStep(NewStep("correction")).
			Comment("multiplier is negative and no correction is pending, subtract the multiplicand")
		_, err = acc.SubtractHigh(multiplicand, false)
		mustNotFail(err)
		step.Record("A", multiplicand, "subtracted from the high half").Record("P", acc, "corrected product")
	}
	product, err := dropGuardBytes(acc)
	if err != nil {
		panic(fmt.Sprintf("radix-4 multiplication of %s by %s: %v", a, b, err))
	}
	res.Registers = []*Register{product}
	return res, nil
}

// dropGuardBytes removes the guard byte from each half of a radix-4 accumulator.
// After the final shifts the least significant byte is always zero.
func dropGuardBytes(acc *Register) (*Register, error) {
	if last := acc.Byte(acc.Width() - 1); last != 0 {
		return nil, fmt.Errorf("non-zero trailing byte %s", last)
	}
	bytes := acc.Bytes()
	wide := &Register{bytes: bytes[:len(bytes)-1]}
	return wide.Narrow(len(bytes) - 2)
}

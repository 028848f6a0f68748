// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import "github.com/golang/glog"

// MultiplyBooth multiplies a by b with Booth's radix-2 algorithm.
// A 0->1 transition between the current and the previous multiplier bits subtracts the multiplicand,
// a 1->0 transition adds it, otherwise the partial product is only shifted.
// No final correction is needed.
func MultiplyBooth(a, b *Register) (*Result, error) {
	multiplicand, product, err := prepareMultiplication(Booth, a, b)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	var prev Bit
	for i := 0; i < b.Bits(); i++ {
		step := res.addStep(NewStep(stepTitle(i + 1)))
		cur := product.Bit(0)
		step.Comment("current bit %d, previous bit %d", cur, prev)
		if cur != prev {
			sign := product.Sign()
			var carry Bit
			if cur == 1 {
				step.Comment("0->1 transition, subtract the multiplicand")
				carry, err = product.SubtractHigh(multiplicand, false)
				mustNotFail(err)
				step.Record("A", multiplicand, "subtracted from the high half")
			} else {
				step.Comment("1->0 transition, add the multiplicand")
				carry, err = product.AddHigh(multiplicand, false)
				mustNotFail(err)
				step.Record("A", multiplicand, "added to the high half")
			}
			step.Record("P", product, "before the shift")
			shiftSum(product, sign, multiplicand.Sign(), carry)
		} else {
			step.Comment("no transition, shift only")
			product.ShiftRightArithmetic()
		}
		step.Record("P", product, "shifted right")
		glog.V(2).Infof("%s: bits %d%d, partial product %s", step.Title, prev, cur, product)
		prev = cur
	}
	res.Registers = []*Register{product}
	return res, nil
}

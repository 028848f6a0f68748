// Copyright 2020 Aleksandr Demakin. All rights reserved.

package alu

import "github.com/golang/glog"

// MultiplyWithCorrection multiplies a by b with the shift/add algorithm.
// The multiplier is processed bit by bit as an unsigned number,
// and if it was negative, the multiplicand is subtracted from the high half of the product afterwards.
func MultiplyWithCorrection(a, b *Register) (*Result, error) {
	multiplicand, product, err := prepareMultiplication(WithCorrection, a, b)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for i := 0; i < b.Bits(); i++ {
		step := res.addStep(NewStep(stepTitle(i + 1)))
		if product.Bit(0) == 1 {
			step.Comment("multiplier bit is 1, add the multiplicand")
			sign := product.Sign()
			carry, err := product.AddHigh(multiplicand, false)
			mustNotFail(err)
			step.Record("A", multiplicand, "added to the high half").
				Record("P", product, "before the shift")
			shiftSum(product, sign, multiplicand.Sign(), carry)
		} else {
			step.Comment("multiplier bit is 0, shift only")
			product.ShiftRightArithmetic()
		}
		step.Record("P", product, "shifted right")
		glog.V(2).Infof("%s: partial product %s", step.Title, product)
	}
	if b.Sign() == 1 {
		step := res.addStep(NewStep("correction")).
			Comment("multiplier is negative, subtract the multiplicand from the high half")
		_, err := product.SubtractHigh(multiplicand, false)
		mustNotFail(err)
		step.Record("A", multiplicand, "subtracted").Record("P", product, "corrected product")
		glog.V(2).Infof("correction: product %s", product)
	}
	res.Registers = []*Register{product}
	return res, nil
}

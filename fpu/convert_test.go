// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f     Format
		s     string
		res   string
		float string
		err   error
	}{
		{F1, "0.75", "0.75", "0 1000000 110000000000", nil},
		{F1, "1.0625", "1.0625", "0 1000001 000100010000", nil},
		{F1, "-255.9375", "-255.9375", "1 1000010 111111111111", nil},
		{F1, "0", "0", "0 0000000 000000000000", nil},
		{F1, "0.1", "0.099853515625", "0 1000000 000110011001", nil},
		{F2, "0.75", "0.75", "0 10000000 10000000000", nil},
		{F2, "-3", "-3", "1 10000010 10000000000", nil},
		{F2, "0.1", "0.0999755859375", "0 01111101 10011001100", nil},
		{F1, "1e80", "", "", ErrCharacteristicRange},
		{F2, "1e-80", "", "", ErrCharacteristicRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromDecimal(test.f, decimal.RequireFromString(test.s))
			if test.err != nil {
				a.True(errors.Is(err, test.err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, v.Decimal().String())
				a.Equal(test.float, v.String())
			}
		})
	}
}

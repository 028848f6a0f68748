// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpu

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// FromDecimal converts d to format f. Bits that do not fit the mantissa are truncated.
func FromDecimal(f Format, d decimal.Decimal) (*Float, error) {
	if d.IsZero() {
		return Zero(f), nil
	}
	f.validate()
	r := new(big.Rat).Abs(d.Rat())
	base := new(big.Rat).SetInt64(int64(f.Base()))
	one := big.NewRat(1, 1)
	minExp := f.minCharacteristic() - f.CharacteristicOffset - f.Digits()
	maxExp := f.maxCharacteristic() - f.CharacteristicOffset + 1
	exp := 0
	// scale r into [1/base, 1).
	for r.Cmp(one) >= 0 {
		if exp++; exp > maxExp {
			return nil, fmt.Errorf("%s: %s: %w", f, d, ErrCharacteristicRange)
		}
		r.Quo(r, base)
	}
	for new(big.Rat).Mul(r, base).Cmp(one) < 0 {
		if exp--; exp < minExp {
			return nil, fmt.Errorf("%s: %s: %w", f, d, ErrCharacteristicRange)
		}
		r.Mul(r, base)
	}
	scaled := new(big.Int).Lsh(r.Num(), uint(f.FractionBits()))
	fraction := scaled.Quo(scaled, r.Denom())
	return NewFloat(f, fraction.Uint64(), exp, d.IsNegative())
}

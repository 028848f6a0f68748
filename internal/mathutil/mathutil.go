// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains small helpers shared by the arithmetic packages.
package mathutil

import (
	"math/big"
)

var (
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
)

// SignFill returns a byte with all bits set to 'sign'.
// It is the value used to sign-extend a two's complement number.
func SignFill(sign uint8) uint8 {
	return -(sign & 1)
}

// SignOf returns the most significant bit of a byte.
func SignOf(b uint8) uint8 {
	return b >> 7
}

// IsSignExtension checks that every byte in 'ext' replicates the sign of 'b'.
func IsSignExtension(ext []uint8, b uint8) bool {
	fill := SignFill(SignOf(b))
	for _, e := range ext {
		if e != fill {
			return false
		}
	}
	return true
}

// Pow2Decimal represents m*2^exp as coef*10^exp10 exactly.
// For negative exponents, 1/2^k = 5^k/10^k is used, so no precision is lost.
func Pow2Decimal(m *big.Int, exp int) (coef *big.Int, exp10 int32) {
	coef = new(big.Int).Set(m)
	if exp >= 0 {
		return coef.Mul(coef, new(big.Int).Exp(bigTwo, big.NewInt(int64(exp)), nil)), 0
	}
	k := -exp
	coef.Mul(coef, new(big.Int).Exp(bigFive, big.NewInt(int64(k)), nil))
	return coef, int32(-k)
}

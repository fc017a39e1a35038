// Package money holds the cent-exact arithmetic shared by loan origination
// and installment settlement.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/safafin/go-loan-api/internal/common"
)

var oneHundred = decimal.NewFromInt(100)

// RoundBank2 rounds to two decimals, half to even.
func RoundBank2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Partition splits amount into `parts` two-decimal values whose exact sum is
// the amount truncated to whole cents. The amount is scaled to minor units,
// divided integrally, and the remainder is spread one cent at a time; the
// smaller values are emitted first so that earlier schedule positions never
// carry more than later ones.
//
// Partition(100.00, 3) => [33.33, 33.33, 33.34]
// Partition(0.01, 3)   => [0.00, 0.00, 0.01]
func Partition(amount decimal.Decimal, parts int) ([]decimal.Decimal, error) {
	if parts <= 0 {
		return nil, common.ErrInvalidDivisor
	}

	cents := amount.Mul(oneHundred).IntPart()
	n := int64(parts)

	low := cents / n
	high := low + 1
	numHighs := cents % n
	numLows := n - numHighs

	result := make([]decimal.Decimal, 0, parts)
	for i := int64(0); i < numLows; i++ {
		result = append(result, decimal.New(low, -2))
	}
	for i := int64(0); i < numHighs; i++ {
		result = append(result, decimal.New(high, -2))
	}

	return result, nil
}

package utils

import "github.com/shopspring/decimal"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// SplitEvenly divide total em n partes iguais arredondadas para centavos
func SplitEvenly(total float64, n int) float64 {
	if n <= 0 || total == 0 {
		return 0
	}

	return decimal.NewFromFloat(total).
		DivRound(decimal.NewFromInt(int64(n)), 2).
		InexactFloat64()
}

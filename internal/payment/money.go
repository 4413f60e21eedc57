package payment

import "github.com/shopspring/decimal"

// Commission computes the platform's cut of amount at the given rate,
// rounded half-even to two decimals. Half-even keeps the split stable
// under repeated conversion between decimal and minor-unit integers.
func Commission(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).RoundBank(2)
}

// Cents converts a two-decimal amount to the currency's minor unit,
// which is what the gateway expects for every monetary field.
func Cents(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// Quantity is a stock amount. Same representation as Money, different scale.
type Quantity = decimal.Decimal

// Scales match the NUMERIC(12,2) and NUMERIC(12,3) columns.
const (
	MoneyScale    int32 = 2
	QuantityScale int32 = 3
)

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}

// RoundMoney rounds half away from zero to MoneyScale, as Postgres does on insert.
func RoundMoney(m Money) Money {
	return m.Round(MoneyScale)
}

// RoundQuantity rounds half away from zero to QuantityScale.
func RoundQuantity(q Quantity) Quantity {
	return q.Round(QuantityScale)
}

// RoundQuantityPtr is RoundQuantity for optional values.
func RoundQuantityPtr(q *Quantity) *Quantity {
	if q == nil {
		return nil
	}
	r := RoundQuantity(*q)
	return &r
}

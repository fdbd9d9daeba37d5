package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// NewMoney rounds amount to the standard scale of unit, e.g. 2 for EUR, 0 for JPY.
// NaN and infinite amounts have no decimal form and are rejected.
func NewMoney(amount float64, unit currency.Unit) (Money, error) {
	if !isFinite(amount) {
		return Money{}, fmt.Errorf("amount[%v] is not finite", amount)
	}

	return Money{
		Amount:   decimal.NewFromFloat(amount).Round(scaleOf(unit)),
		Currency: unit,
	}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(scaleOf(m.Currency)))
}

func scaleOf(unit currency.Unit) int32 {
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

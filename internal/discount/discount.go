// Package discount provides DiscountUtility strategies selectable by name.
package discount

import (
	"fmt"
	"math"

	"github.com/nikolayk812/testshop/internal/domain"
	"github.com/nikolayk812/testshop/internal/port"
)

const (
	KindNone    = "none"
	KindFlat    = "flat"
	KindPercent = "percent"
)

// None grants no discount.
type None struct{}

func (None) CalculateDiscount(*domain.UserAccount) float64 {
	return 0
}

// Flat grants the same amount to every order.
type Flat struct {
	Amount float64
}

func (f Flat) CalculateDiscount(*domain.UserAccount) float64 {
	return f.Amount
}

// Percent grants Rate percent of the user's cart total.
type Percent struct {
	Rate float64
}

func (p Percent) CalculateDiscount(user *domain.UserAccount) float64 {
	return user.ShoppingCart.GetCartTotalPrice() * p.Rate / 100
}

func New(kind string, value float64) (port.DiscountUtility, error) {
	switch kind {
	case KindNone, "":
		return None{}, nil
	case KindFlat:
		if !isFinite(value) {
			return nil, fmt.Errorf("flat discount[%v] is not finite", value)
		}
		if value < 0 {
			return nil, fmt.Errorf("flat discount[%v] is negative", value)
		}
		return Flat{Amount: value}, nil
	case KindPercent:
		if !isFinite(value) {
			return nil, fmt.Errorf("percent discount[%v] is not finite", value)
		}
		if value < 0 || value > 100 {
			return nil, fmt.Errorf("percent discount[%v] is not in 0-100", value)
		}
		return Percent{Rate: value}, nil
	default:
		return nil, fmt.Errorf("discount kind[%s] is not valid", kind)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

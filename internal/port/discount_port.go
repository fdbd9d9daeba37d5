package port

import (
	"github.com/nikolayk812/testshop/internal/domain"
)

// DiscountUtility computes the discount amount granted to a user's order.
type DiscountUtility interface {
	CalculateDiscount(user *domain.UserAccount) float64
}

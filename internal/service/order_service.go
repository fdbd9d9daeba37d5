package service

import (
	"fmt"

	"github.com/nikolayk812/testshop/internal/domain"
	"github.com/nikolayk812/testshop/internal/port"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

type OrderService struct {
	discount port.DiscountUtility
	logger   zerolog.Logger
}

type Option func(*OrderService)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *OrderService) {
		s.logger = logger
	}
}

// OrderQuote is an order price broken down into money amounts.
type OrderQuote struct {
	Subtotal domain.Money
	Discount domain.Money
	Total    domain.Money
}

func NewOrderService(discount port.DiscountUtility, opts ...Option) (*OrderService, error) {
	if discount == nil {
		return nil, fmt.Errorf("discount is nil")
	}

	s := &OrderService{
		discount: discount,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// GetOrderPrice is the cart total minus the user's discount. The result is
// not clamped, a discount above the total yields a negative price.
func (s *OrderService) GetOrderPrice(user *domain.UserAccount) (float64, error) {
	total, discount, err := s.price(user)
	if err != nil {
		return 0, err
	}

	return total - discount, nil
}

func (s *OrderService) Quote(user *domain.UserAccount, unit currency.Unit) (OrderQuote, error) {
	total, discount, err := s.price(user)
	if err != nil {
		return OrderQuote{}, err
	}

	subtotal, err := domain.NewMoney(total, unit)
	if err != nil {
		return OrderQuote{}, fmt.Errorf("cart total: %w", err)
	}

	discountMoney, err := domain.NewMoney(discount, unit)
	if err != nil {
		return OrderQuote{}, fmt.Errorf("discount: %w", err)
	}

	orderTotal, err := domain.NewMoney(total-discount, unit)
	if err != nil {
		return OrderQuote{}, fmt.Errorf("order total: %w", err)
	}

	return OrderQuote{
		Subtotal: subtotal,
		Discount: discountMoney,
		Total:    orderTotal,
	}, nil
}

func (s *OrderService) price(user *domain.UserAccount) (total, discount float64, err error) {
	if user == nil {
		return 0, 0, fmt.Errorf("user is nil")
	}
	if user.ShoppingCart == nil {
		return 0, 0, fmt.Errorf("user cart is nil")
	}

	total = user.ShoppingCart.GetCartTotalPrice()
	discount = s.discount.CalculateDiscount(user)

	event := s.logger.Debug()
	if discount > total {
		event = s.logger.Warn()
	}
	event.
		Stringer("user_id", user.ID).
		Float64("total", total).
		Float64("discount", discount).
		Msg("order priced")

	return total, discount, nil
}

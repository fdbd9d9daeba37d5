package domain

import (
	"fmt"
	"math"
)

type Product struct {
	ID       int
	Name     string
	Price    float64
	Quantity float64
}

// Subtotal is the product's contribution to the cart total.
func (p Product) Subtotal() float64 {
	return p.Price * p.Quantity
}

func (p Product) Validate() error {
	if !isFinite(p.Price) {
		return fmt.Errorf("product[%d]: price[%v] is not finite", p.ID, p.Price)
	}
	if !isFinite(p.Quantity) {
		return fmt.Errorf("product[%d]: quantity[%v] is not finite", p.ID, p.Quantity)
	}
	if p.Price < 0 {
		return fmt.Errorf("product[%d]: price is negative", p.ID)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product[%d]: quantity is negative", p.ID)
	}

	return nil
}

// String renders every field, two products with equal strings are the same product.
func (p Product) String() string {
	return fmt.Sprintf("Product{ID: %d, Name: %q, Price: %v, Quantity: %v}", p.ID, p.Name, p.Price, p.Quantity)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

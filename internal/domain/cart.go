package domain

import (
	"fmt"
	"slices"
	"sync"
)

// ShoppingCart keeps products in insertion order, unique by ID.
type ShoppingCart struct {
	mu       sync.RWMutex
	products []Product
}

func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{}
}

// AddProductToCart appends the product. A product with an ID already in the
// cart replaces that entry in place.
//
// TODO: confirm duplicate-ID handling (replace, reject or append) with the product owner.
func (c *ShoppingCart) AddProductToCart(product Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(product.ID); i >= 0 {
		c.products[i] = product
		return
	}

	c.products = append(c.products, product)
}

func (c *ShoppingCart) RemoveProductFromCart(product Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(product.ID)
	if i < 0 {
		return fmt.Errorf("product[%d]: %w", product.ID, ErrProductNotFound)
	}

	c.products = slices.Delete(c.products, i, i+1)

	return nil
}

func (c *ShoppingCart) GetProductByID(id int) (Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return Product{}, fmt.Errorf("product[%d]: %w", id, ErrProductNotFound)
	}

	return c.products[i], nil
}

func (c *ShoppingCart) GetCartTotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, p := range c.products {
		total += p.Subtotal()
	}

	return total
}

// Products returns a copy of the cart contents in insertion order.
func (c *ShoppingCart) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.products)
}

func (c *ShoppingCart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.products)
}

// caller must hold c.mu
func (c *ShoppingCart) indexOf(id int) int {
	return slices.IndexFunc(c.products, func(p Product) bool {
		return p.ID == id
	})
}

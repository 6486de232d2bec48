// Package cart holds the ephemeral shopping cart: an ordered list of product
// snapshots with quantities, at most one entry per product id.
package cart

import (
	"github.com/ray-remotestate/comanda/models"
)

type Cart struct {
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add puts the product in the cart with quantity 1, or bumps the quantity
// when an entry for the same product id already exists.
func (c *Cart) Add(p models.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, models.CartItem{Product: p, Quantity: 1})
}

// Remove drops the entry for the product id; absent ids are a no-op.
func (c *Cart) Remove(productID string) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// SetQuantity replaces the entry's quantity. Anything at or below zero
// removes the entry; there is no lower bound to validate against.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

// Total is the sum of price x quantity over the whole cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Items returns the entries in insertion order. The slice is a copy; mutating
// it does not touch the cart.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear empties the cart wholesale; used after a successful order submission.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

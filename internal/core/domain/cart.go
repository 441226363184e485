package domain

import "math"

// Cart maps product identifier to a desired quantity. A quantity of
// zero is represented by absence, every stored quantity is >= 1.
// Line order follows first insertion, matching the storefront view.
type Cart struct {
	quantities map[string]int
	order      []string
}

func NewCart() *Cart {
	return &Cart{quantities: make(map[string]int)}
}

// SetQuantity coerces value to a non-negative integer: non-finite
// input counts as 0, negatives clamp to 0, fractions floor. Zero
// removes the line entirely.
func (c *Cart) SetQuantity(productID string, value float64) {
	qty := coerceQuantity(value)
	_, exists := c.quantities[productID]

	if qty == 0 {
		if exists {
			delete(c.quantities, productID)
			c.dropFromOrder(productID)
		}
		return
	}

	c.quantities[productID] = qty
	if !exists {
		c.order = append(c.order, productID)
	}
}

func coerceQuantity(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value < 0 {
		return 0
	}
	return int(math.Floor(value))
}

func (c *Cart) dropFromOrder(productID string) {
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *Cart) Quantity(productID string) int {
	return c.quantities[productID]
}

func (c *Cart) HasSelection() bool {
	return len(c.quantities) > 0
}

func (c *Cart) Len() int {
	return len(c.quantities)
}

// Lines returns product identifiers in insertion order.
func (c *Cart) Lines() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// EstimatedTotal sums price×quantity against live catalog prices.
// Lines whose product no longer resolves contribute nothing.
func (c *Cart) EstimatedTotal(resolve func(productID string) (Product, bool)) int64 {
	var total int64
	for id, qty := range c.quantities {
		p, ok := resolve(id)
		if !ok {
			continue
		}
		total += p.Price * int64(qty)
	}
	return total
}

func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.order = nil
}

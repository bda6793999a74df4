// internal/core/domain/product.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductIDPrefix is the prefix of canonical product identifiers ("P1", "P2", ...).
const ProductIDPrefix = "P"

// Product is a stocked warehouse item. Stock never goes negative: it
// changes only through Fulfill (which takes at most what is on hand) and
// Receive (which requires a positive quantity).
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}

// NewProduct builds a product with the given sequence number.
func NewProduct(name string, price decimal.Decimal, stock int, seq int) *Product {
	return &Product{
		ID:    fmt.Sprintf("%s%d", ProductIDPrefix, seq),
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

// Fulfill removes up to requested units from stock and returns how many
// were actually taken: min(stock, requested).
func (p *Product) Fulfill(requested int) int {
	take := requested
	if p.Stock < take {
		take = p.Stock
	}
	p.Stock -= take
	return take
}

// Receive adds qty units to stock. Qty must be positive.
func (p *Product) Receive(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("receive %d: %w", qty, ErrInvalidQuantity)
	}
	p.Stock += qty
	return nil
}

func (p *Product) String() string {
	return fmt.Sprintf("%s | %s | $%s | qty=%d", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
}

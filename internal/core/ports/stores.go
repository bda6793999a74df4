// internal/core/ports/stores.go
package ports

import (
	"github.com/shopspring/decimal"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

// ClientStore is the ordered, identifier-indexed collection of clients.
// Insert assigns the next sequential "C<n>" identifier; identifiers are
// never reused. Lookups are by canonical identifier only; resolving
// human-entered text (id or name) is the calling adapter's concern.
type ClientStore interface {
	Insert(name, address string) *domain.Client
	Find(id string) (*domain.Client, bool)
	All() []*domain.Client
	// Restore replaces the store contents with previously archived
	// clients, advancing the identifier sequence past the highest
	// restored id.
	Restore(clients []*domain.Client)
}

// ProductStore is the ordered, identifier-indexed collection of
// products, with sequential "P<n>" identifiers.
type ProductStore interface {
	Insert(name string, price decimal.Decimal, stock int) *domain.Product
	Find(id string) (*domain.Product, bool)
	All() []*domain.Product
	Restore(products []*domain.Product)
}

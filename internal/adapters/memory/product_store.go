// internal/adapters/memory/product_store.go
package memory

import (
	"github.com/shopspring/decimal"

	"github.com/ammerola/warehouse-be/internal/core/domain"
	"github.com/ammerola/warehouse-be/internal/core/ports"
)

// productStore keeps products in insertion order with an id index.
type productStore struct {
	byID    map[string]*domain.Product
	ordered []*domain.Product
	nextSeq int
}

// NewProductStore returns an empty product store starting at "P1".
func NewProductStore() ports.ProductStore {
	return &productStore{byID: make(map[string]*domain.Product), nextSeq: 1}
}

func (s *productStore) Insert(name string, price decimal.Decimal, stock int) *domain.Product {
	p := domain.NewProduct(name, price, stock, s.nextSeq)
	s.nextSeq++
	s.byID[p.ID] = p
	s.ordered = append(s.ordered, p)
	return p
}

func (s *productStore) Find(id string) (*domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *productStore) All() []*domain.Product {
	out := make([]*domain.Product, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *productStore) Restore(products []*domain.Product) {
	s.byID = make(map[string]*domain.Product, len(products))
	s.ordered = make([]*domain.Product, 0, len(products))
	s.nextSeq = 1
	for _, p := range products {
		s.byID[p.ID] = p
		s.ordered = append(s.ordered, p)
		if n := idSequence(p.ID, domain.ProductIDPrefix); n >= s.nextSeq {
			s.nextSeq = n + 1
		}
	}
}

var _ ports.ProductStore = (*productStore)(nil)

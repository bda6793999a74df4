// internal/core/domain/wishlist.go
package domain

import "fmt"

// WishlistItem is one desired-but-not-yet-ordered line.
type WishlistItem struct {
	ProductID string
	Qty       int
}

// Wishlist holds a client's desired quantities per product. Iteration
// order is the order of first insertion; adding to an existing product
// merges quantities without reordering. All stored quantities are > 0.
type Wishlist struct {
	qty   map[string]int
	order []string
}

// NewWishlist returns an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{qty: make(map[string]int)}
}

// Add merges qty into the entry for productID. Qty must be positive.
func (w *Wishlist) Add(productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("wishlist add %d: %w", qty, ErrInvalidQuantity)
	}
	if _, ok := w.qty[productID]; !ok {
		w.order = append(w.order, productID)
	}
	w.qty[productID] += qty
	return nil
}

// Items returns the wishlist lines in insertion order.
func (w *Wishlist) Items() []WishlistItem {
	items := make([]WishlistItem, 0, len(w.order))
	for _, id := range w.order {
		items = append(items, WishlistItem{ProductID: id, Qty: w.qty[id]})
	}
	return items
}

// Quantity returns the desired quantity for productID, zero if absent.
func (w *Wishlist) Quantity(productID string) int {
	return w.qty[productID]
}

// IsEmpty reports whether the wishlist has no entries.
func (w *Wishlist) IsEmpty() bool {
	return len(w.order) == 0
}

// Clear empties the wishlist in one step.
func (w *Wishlist) Clear() {
	w.qty = make(map[string]int)
	w.order = nil
}

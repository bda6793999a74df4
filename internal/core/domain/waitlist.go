// internal/core/domain/waitlist.go
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry is unmet demand for one product by one client. It is
// created when an order can only be partially filled and removed only
// when a later restock covers it in full.
type WaitlistEntry struct {
	ID          uuid.UUID
	ProductID   string
	ClientID    string
	Qty         int
	RequestedAt time.Time
}

func (e WaitlistEntry) String() string {
	return fmt.Sprintf("WaitlistEntry{%s x %d for %s, requested %s}",
		e.ProductID, e.Qty, e.ClientID, e.RequestedAt.Format(time.RFC3339))
}

// Waitlist keeps a FIFO queue of entries per product. Queues are created
// lazily on first append and drained strictly from the head.
type Waitlist struct {
	byProduct map[string][]WaitlistEntry
}

// NewWaitlist returns an empty waitlist.
func NewWaitlist() *Waitlist {
	return &Waitlist{byProduct: make(map[string][]WaitlistEntry)}
}

// Append adds an entry at the tail of the product's queue. Qty must be
// positive.
func (w *Waitlist) Append(productID, clientID string, qty int, at time.Time) (WaitlistEntry, error) {
	if qty <= 0 {
		return WaitlistEntry{}, fmt.Errorf("waitlist append %d: %w", qty, ErrInvalidQuantity)
	}
	entry := WaitlistEntry{
		ID:          uuid.New(),
		ProductID:   productID,
		ClientID:    clientID,
		Qty:         qty,
		RequestedAt: at,
	}
	w.byProduct[productID] = append(w.byProduct[productID], entry)
	return entry, nil
}

// PeekHead returns the head entry of the product's queue without
// removing it. The second return is false when the queue is empty.
func (w *Waitlist) PeekHead(productID string) (WaitlistEntry, bool) {
	q := w.byProduct[productID]
	if len(q) == 0 {
		return WaitlistEntry{}, false
	}
	return q[0], true
}

// PopHead removes and returns the head entry of the product's queue.
func (w *Waitlist) PopHead(productID string) (WaitlistEntry, bool) {
	q := w.byProduct[productID]
	if len(q) == 0 {
		return WaitlistEntry{}, false
	}
	head := q[0]
	w.byProduct[productID] = q[1:]
	return head, true
}

// ForProduct returns a snapshot of the product's queue in FIFO order.
func (w *Waitlist) ForProduct(productID string) []WaitlistEntry {
	q := w.byProduct[productID]
	out := make([]WaitlistEntry, len(q))
	copy(out, q)
	return out
}

// ForClient returns all entries belonging to clientID across products.
// Order across products is unspecified; within a product it is FIFO.
func (w *Waitlist) ForClient(clientID string) []WaitlistEntry {
	var out []WaitlistEntry
	for _, q := range w.byProduct {
		for _, e := range q {
			if strings.EqualFold(e.ClientID, clientID) {
				out = append(out, e)
			}
		}
	}
	return out
}

// CountFor returns the number of queued entries for productID.
func (w *Waitlist) CountFor(productID string) int {
	return len(w.byProduct[productID])
}

// All returns every entry, grouped by product id in lexical order and
// FIFO within each product. Used for archiving.
func (w *Waitlist) All() []WaitlistEntry {
	ids := make([]string, 0, len(w.byProduct))
	for id := range w.byProduct {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []WaitlistEntry
	for _, id := range ids {
		out = append(out, w.byProduct[id]...)
	}
	return out
}

// Restore replaces the waitlist contents with archived entries,
// preserving their order within each product.
func (w *Waitlist) Restore(entries []WaitlistEntry) {
	w.byProduct = make(map[string][]WaitlistEntry)
	for _, e := range entries {
		w.byProduct[e.ProductID] = append(w.byProduct[e.ProductID], e)
	}
}

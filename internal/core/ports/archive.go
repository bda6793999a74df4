// internal/core/ports/archive.go
package ports

import (
	"context"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

// ArchiveState is a full snapshot of the warehouse: every client (with
// wishlist, invoices and balance), every product, and the waitlist
// queues in FIFO order per product.
type ArchiveState struct {
	Clients  []*domain.Client
	Products []*domain.Product
	Waitlist []domain.WaitlistEntry
}

// WarehouseArchive persists and restores warehouse snapshots so an
// interactive session can resume where the previous one left off. The
// core never touches it; only the startup/shutdown wiring does.
type WarehouseArchive interface {
	Save(ctx context.Context, state ArchiveState) error
	// Load returns the most recent snapshot. The bool is false when no
	// snapshot has been saved yet.
	Load(ctx context.Context) (ArchiveState, bool, error)
}

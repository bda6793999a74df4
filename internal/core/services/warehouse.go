// internal/core/services/warehouse.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/warehouse-be/internal/core/domain"
	"github.com/ammerola/warehouse-be/internal/core/ports"
)

// WarehouseService implements the warehouse core: client/product
// registration, wishlists, the order-fulfillment engine and the restock
// waitlist drain. It is exercised by a single session at a time; see
// the concurrency notes in DESIGN.md before sharing it across
// goroutines.
type WarehouseService struct {
	clients  ports.ClientStore
	products ports.ProductStore
	waitlist *domain.Waitlist
	logger   *slog.Logger
}

// Statically assert that *WarehouseService implements the port.
var _ ports.WarehouseService = (*WarehouseService)(nil)

// NewWarehouseService wires the stores into a warehouse service with an
// empty waitlist.
func NewWarehouseService(clients ports.ClientStore, products ports.ProductStore, logger *slog.Logger) *WarehouseService {
	return &WarehouseService{
		clients:  clients,
		products: products,
		waitlist: domain.NewWaitlist(),
		logger:   logger.With(slog.String("service", "warehouse")),
	}
}

// AddClient registers a new client and returns it with its assigned id.
func (s *WarehouseService) AddClient(ctx context.Context, name, address string) (*domain.Client, error) {
	c := s.clients.Insert(name, address)
	s.logger.InfoContext(ctx, "client added",
		slog.String("client_id", c.ID),
		slog.String("name", c.Name))
	return c, nil
}

// AddProduct registers a new product and returns it with its assigned id.
func (s *WarehouseService) AddProduct(ctx context.Context, name string, price decimal.Decimal, qty int) (*domain.Product, error) {
	if qty < 0 {
		return nil, fmt.Errorf("add product with stock %d: %w", qty, domain.ErrInvalidQuantity)
	}
	p := s.products.Insert(name, price, qty)
	s.logger.InfoContext(ctx, "product added",
		slog.String("product_id", p.ID),
		slog.String("name", p.Name),
		slog.Int("stock", p.Stock))
	return p, nil
}

// FindClient looks up a client by canonical identifier.
func (s *WarehouseService) FindClient(id string) (*domain.Client, error) {
	c, ok := s.clients.Find(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrClientNotFound)
	}
	return c, nil
}

// FindProduct looks up a product by canonical identifier.
func (s *WarehouseService) FindProduct(id string) (*domain.Product, error) {
	p, ok := s.products.Find(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

// ListClients returns all clients in insertion order.
func (s *WarehouseService) ListClients() []*domain.Client {
	return s.clients.All()
}

// ListProducts returns all products in insertion order.
func (s *WarehouseService) ListProducts() []*domain.Product {
	return s.products.All()
}

// RecordPayment subtracts a positive amount from the client's balance.
func (s *WarehouseService) RecordPayment(ctx context.Context, clientID string, amount decimal.Decimal) error {
	c, err := s.FindClient(clientID)
	if err != nil {
		return err
	}
	if err := c.RecordPayment(amount); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "payment recorded",
		slog.String("client_id", c.ID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance", c.Balance.StringFixed(2)))
	return nil
}

// AddToWishlist merges qty of productID into the client's wishlist.
func (s *WarehouseService) AddToWishlist(ctx context.Context, clientID, productID string, qty int) error {
	c, err := s.FindClient(clientID)
	if err != nil {
		return err
	}
	if _, err := s.FindProduct(productID); err != nil {
		return err
	}
	if err := c.Wishlist.Add(productID, qty); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "wishlist updated",
		slog.String("client_id", clientID),
		slog.String("product_id", productID),
		slog.Int("qty", qty))
	return nil
}

// GetWishlist returns a snapshot of the client's wishlist lines.
func (s *WarehouseService) GetWishlist(clientID string) ([]domain.WishlistItem, error) {
	c, err := s.FindClient(clientID)
	if err != nil {
		return nil, err
	}
	return c.Wishlist.Items(), nil
}

// GetProductWaitlist returns the FIFO queue snapshot for a product.
func (s *WarehouseService) GetProductWaitlist(productID string) ([]domain.WaitlistEntry, error) {
	if _, err := s.FindProduct(productID); err != nil {
		return nil, err
	}
	return s.waitlist.ForProduct(productID), nil
}

// GetClientWaitlist returns all waitlist entries held for a client.
func (s *WarehouseService) GetClientWaitlist(clientID string) ([]domain.WaitlistEntry, error) {
	if _, err := s.FindClient(clientID); err != nil {
		return nil, err
	}
	return s.waitlist.ForClient(clientID), nil
}

// PlaceOrder turns the client's wishlist into an invoice plus waitlist
// entries in one sweep. Each line splits exactly into fulfilled +
// shortfall, the fulfilled part priced at the product's current unit
// price, the shortfall queued at the tail of the product's waitlist.
// The wishlist is cleared unconditionally afterwards: the shortfall
// lives solely in the waitlist from then on. When nothing was fulfilled
// the invoice is discarded and (nil, nil) is returned.
func (s *WarehouseService) PlaceOrder(ctx context.Context, clientID string) (*domain.Invoice, error) {
	c, err := s.FindClient(clientID)
	if err != nil {
		return nil, err
	}
	if c.Wishlist.IsEmpty() {
		return nil, nil
	}

	now := time.Now()
	invoice := domain.NewInvoice(c.ID, now)

	for _, item := range c.Wishlist.Items() {
		p, ok := s.products.Find(item.ProductID)
		if !ok {
			// Deletion is not exposed, so a dangling wishlist entry
			// points at a bug upstream; skip it rather than abort the
			// whole order.
			s.logger.WarnContext(ctx, "wishlist references unknown product, skipping",
				slog.String("client_id", c.ID),
				slog.String("product_id", item.ProductID))
			continue
		}

		fulfilled := p.Fulfill(item.Qty)
		if fulfilled > 0 {
			invoice.AddLine(p.ID, p.Name, fulfilled, p.Price)
		}

		if shortfall := item.Qty - fulfilled; shortfall > 0 {
			entry, err := s.waitlist.Append(p.ID, c.ID, shortfall, now)
			if err != nil {
				return nil, fmt.Errorf("queue shortfall for %s: %w", p.ID, err)
			}
			s.logger.InfoContext(ctx, "shortfall waitlisted",
				slog.String("client_id", c.ID),
				slog.String("product_id", p.ID),
				slog.Int("qty", shortfall),
				slog.String("entry_id", entry.ID.String()))
		}
	}

	c.Wishlist.Clear()

	if invoice.IsEmpty() {
		s.logger.InfoContext(ctx, "nothing fulfilled, order fully waitlisted",
			slog.String("client_id", c.ID))
		return nil, nil
	}

	c.ApplyInvoice(invoice)
	s.logger.InfoContext(ctx, "order placed",
		slog.String("client_id", c.ID),
		slog.String("invoice_id", invoice.ID),
		slog.String("total", invoice.Total.StringFixed(2)),
		slog.Int("lines", len(invoice.Lines)))
	return invoice, nil
}

// ReceiveShipment adds qty units of stock and drains the product's
// waitlist strictly from the head: an entry is satisfied only in full,
// and a head entry larger than the remaining stock stops the drain so a
// later, smaller demand can never jump the queue.
func (s *WarehouseService) ReceiveShipment(ctx context.Context, productID string, qty int) error {
	p, err := s.FindProduct(productID)
	if err != nil {
		return err
	}
	if err := p.Receive(qty); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "shipment received",
		slog.String("product_id", p.ID),
		slog.Int("qty", qty),
		slog.Int("stock", p.Stock))

	for p.Stock > 0 {
		head, ok := s.waitlist.PeekHead(p.ID)
		if !ok {
			break
		}
		if p.Stock < head.Qty {
			break
		}

		p.Fulfill(head.Qty)
		s.waitlist.PopHead(p.ID)

		c, ok := s.clients.Find(head.ClientID)
		if !ok {
			s.logger.WarnContext(ctx, "waitlist entry references unknown client, dropping",
				slog.String("client_id", head.ClientID),
				slog.String("entry_id", head.ID.String()))
			continue
		}

		inv := domain.NewInvoice(c.ID, time.Now())
		inv.AddLine(p.ID, p.Name, head.Qty, p.Price)
		c.ApplyInvoice(inv)

		s.logger.InfoContext(ctx, "waitlist entry fulfilled",
			slog.String("client_id", c.ID),
			slog.String("product_id", p.ID),
			slog.Int("qty", head.Qty),
			slog.String("invoice_id", inv.ID))
	}
	return nil
}

// Snapshot captures the full warehouse state for archiving.
func (s *WarehouseService) Snapshot() ports.ArchiveState {
	return ports.ArchiveState{
		Clients:  s.clients.All(),
		Products: s.products.All(),
		Waitlist: s.waitlist.All(),
	}
}

// RestoreState replaces the warehouse contents with an archived
// snapshot. Called once during startup wiring, before any session runs.
func (s *WarehouseService) RestoreState(state ports.ArchiveState) {
	s.clients.Restore(state.Clients)
	s.products.Restore(state.Products)
	s.waitlist.Restore(state.Waitlist)
}

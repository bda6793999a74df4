// internal/core/ports/warehouse_service.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

// WarehouseService is the application-facing surface of the warehouse
// core. The interactive session adapter calls into it after the session
// FSM has admitted the operation for the current role.
type WarehouseService interface {
	AddClient(ctx context.Context, name, address string) (*domain.Client, error)
	AddProduct(ctx context.Context, name string, price decimal.Decimal, qty int) (*domain.Product, error)

	FindClient(id string) (*domain.Client, error)
	FindProduct(id string) (*domain.Product, error)
	ListClients() []*domain.Client
	ListProducts() []*domain.Product

	RecordPayment(ctx context.Context, clientID string, amount decimal.Decimal) error
	AddToWishlist(ctx context.Context, clientID, productID string, qty int) error

	GetWishlist(clientID string) ([]domain.WishlistItem, error)
	GetProductWaitlist(productID string) ([]domain.WaitlistEntry, error)
	GetClientWaitlist(clientID string) ([]domain.WaitlistEntry, error)

	// PlaceOrder sweeps the client's wishlist into an invoice plus
	// waitlist entries for any shortfall. A nil invoice with a nil
	// error means nothing could be fulfilled (empty wishlist or all
	// lines waitlisted).
	PlaceOrder(ctx context.Context, clientID string) (*domain.Invoice, error)
	// ReceiveShipment restocks a product and drains its waitlist FIFO,
	// head-of-line, all-or-nothing.
	ReceiveShipment(ctx context.Context, productID string, qty int) error
}

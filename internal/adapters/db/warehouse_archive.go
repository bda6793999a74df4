// internal/adapters/db/warehouse_archive.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/warehouse-be/internal/core/domain"
	"github.com/ammerola/warehouse-be/internal/core/ports"
)

// warehouseArchive implements ports.WarehouseArchive on Postgres. A
// snapshot replaces the previous one wholesale inside one transaction;
// there is exactly one live snapshot at a time.
type warehouseArchive struct {
	db     *Database
	logger *slog.Logger
	sb     sq.StatementBuilderType
}

// NewWarehouseArchive creates a Postgres-backed warehouse archive.
func NewWarehouseArchive(db *Database, logger *slog.Logger) ports.WarehouseArchive {
	return &warehouseArchive{
		db:     db,
		logger: logger.With(slog.String("repository", "archive")),
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var _ ports.WarehouseArchive = (*warehouseArchive)(nil)

// Save writes the full snapshot, replacing whatever was stored before.
func (r *warehouseArchive) Save(ctx context.Context, state ports.ArchiveState) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		// Clients cascade to wishlist items, invoices and lines.
		for _, stmt := range []string{
			`DELETE FROM waitlist_entries`,
			`DELETE FROM clients`,
			`DELETE FROM products`,
		} {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to clear archive: %w", err)
			}
		}

		batch := &pgx.Batch{}

		for pos, c := range state.Clients {
			batch.Queue(
				`INSERT INTO clients (id, position, name, address, balance) VALUES ($1, $2, $3, $4, $5)`,
				c.ID, pos, c.Name, c.Address, c.Balance,
			)
			for wpos, item := range c.Wishlist.Items() {
				batch.Queue(
					`INSERT INTO wishlist_items (client_id, position, product_id, qty) VALUES ($1, $2, $3, $4)`,
					c.ID, wpos, item.ProductID, item.Qty,
				)
			}
			for ipos, inv := range c.Invoices {
				batch.Queue(
					`INSERT INTO invoices (id, client_id, position, created_at, total) VALUES ($1, $2, $3, $4, $5)`,
					inv.ID, c.ID, ipos, inv.CreatedAt, inv.Total,
				)
				for lpos, line := range inv.Lines {
					batch.Queue(
						`INSERT INTO invoice_lines (invoice_id, position, product_id, product_name, qty, unit_price) VALUES ($1, $2, $3, $4, $5, $6)`,
						inv.ID, lpos, line.ProductID, line.ProductName, line.Qty, line.UnitPrice,
					)
				}
			}
		}

		for pos, p := range state.Products {
			batch.Queue(
				`INSERT INTO products (id, position, name, price, stock) VALUES ($1, $2, $3, $4, $5)`,
				p.ID, pos, p.Name, p.Price, p.Stock,
			)
		}

		for pos, e := range state.Waitlist {
			batch.Queue(
				`INSERT INTO waitlist_entries (id, position, product_id, client_id, qty, requested_at) VALUES ($1, $2, $3, $4, $5, $6)`,
				e.ID, pos, e.ProductID, e.ClientID, e.Qty, e.RequestedAt,
			)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("failed to write snapshot row %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save warehouse snapshot: %w", err)
	}

	r.logger.InfoContext(ctx, "warehouse snapshot saved",
		slog.Int("clients", len(state.Clients)),
		slog.Int("products", len(state.Products)),
		slog.Int("waitlist_entries", len(state.Waitlist)))
	return nil
}

// Load reads the stored snapshot back into domain records.
func (r *warehouseArchive) Load(ctx context.Context) (ports.ArchiveState, bool, error) {
	var state ports.ArchiveState

	clients, err := r.loadClients(ctx)
	if err != nil {
		return state, false, err
	}
	products, err := r.loadProducts(ctx)
	if err != nil {
		return state, false, err
	}
	if len(clients) == 0 && len(products) == 0 {
		return state, false, nil
	}

	byID := make(map[string]*domain.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}
	if err := r.loadWishlists(ctx, byID); err != nil {
		return state, false, err
	}
	if err := r.loadInvoices(ctx, byID); err != nil {
		return state, false, err
	}
	waitlist, err := r.loadWaitlist(ctx)
	if err != nil {
		return state, false, err
	}

	state = ports.ArchiveState{Clients: clients, Products: products, Waitlist: waitlist}
	r.logger.InfoContext(ctx, "warehouse snapshot loaded",
		slog.Int("clients", len(clients)),
		slog.Int("products", len(products)),
		slog.Int("waitlist_entries", len(waitlist)))
	return state, true, nil
}

func (r *warehouseArchive) loadClients(ctx context.Context) ([]*domain.Client, error) {
	query, args, err := r.sb.
		Select("id", "name", "address", "balance").
		From("clients").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build clients query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c := &domain.Client{Wishlist: domain.NewWishlist()}
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *warehouseArchive) loadProducts(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := r.sb.
		Select("id", "name", "price", "stock").
		From("products").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build products query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p := &domain.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *warehouseArchive) loadWishlists(ctx context.Context, clients map[string]*domain.Client) error {
	query, args, err := r.sb.
		Select("client_id", "product_id", "qty").
		From("wishlist_items").
		OrderBy("client_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build wishlist query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to load wishlists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var clientID, productID string
		var qty int
		if err := rows.Scan(&clientID, &productID, &qty); err != nil {
			return fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		c, ok := clients[clientID]
		if !ok {
			continue
		}
		if err := c.Wishlist.Add(productID, qty); err != nil {
			return fmt.Errorf("failed to restore wishlist for %s: %w", clientID, err)
		}
	}
	return rows.Err()
}

func (r *warehouseArchive) loadInvoices(ctx context.Context, clients map[string]*domain.Client) error {
	query, args, err := r.sb.
		Select("i.id", "i.client_id", "i.created_at",
			"l.product_id", "l.product_name", "l.qty", "l.unit_price").
		From("invoices i").
		Join("invoice_lines l ON l.invoice_id = i.id").
		OrderBy("i.client_id", "i.position", "l.position").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build invoices query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to load invoices: %w", err)
	}
	defer rows.Close()

	invoices := make(map[string]*domain.Invoice)
	for rows.Next() {
		var inv domain.Invoice
		var line domain.InvoiceLine
		if err := rows.Scan(&inv.ID, &inv.ClientID, &inv.CreatedAt,
			&line.ProductID, &line.ProductName, &line.Qty, &line.UnitPrice); err != nil {
			return fmt.Errorf("failed to scan invoice line: %w", err)
		}

		current, ok := invoices[inv.ID]
		if !ok {
			current = domain.RestoreInvoice(inv.ID, inv.ClientID, inv.CreatedAt)
			invoices[inv.ID] = current
			if c, ok := clients[inv.ClientID]; ok {
				// Append without touching the balance: the archived
				// balance already reflects this invoice.
				c.Invoices = append(c.Invoices, current)
			}
		}
		current.AddLine(line.ProductID, line.ProductName, line.Qty, line.UnitPrice)
	}
	return rows.Err()
}

func (r *warehouseArchive) loadWaitlist(ctx context.Context) ([]domain.WaitlistEntry, error) {
	query, args, err := r.sb.
		Select("id", "product_id", "client_id", "qty", "requested_at").
		From("waitlist_entries").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build waitlist query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load waitlist: %w", err)
	}
	defer rows.Close()

	var entries []domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ClientID, &e.Qty, &e.RequestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan waitlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

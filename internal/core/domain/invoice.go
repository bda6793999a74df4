// internal/core/domain/invoice.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLine is one shipped line of an invoice. Product name and unit
// price are snapshotted at fulfillment time so later product edits do
// not retroactively alter history.
type InvoiceLine struct {
	ProductID   string
	ProductName string
	Qty         int
	UnitPrice   decimal.Decimal
}

// LineTotal returns qty * unit price.
func (l InvoiceLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

func (l InvoiceLine) String() string {
	return fmt.Sprintf("%s (%s) x %d @ $%s = $%s",
		l.ProductName, l.ProductID, l.Qty, l.UnitPrice.StringFixed(2), l.LineTotal().StringFixed(2))
}

// Invoice is an immutable record of shipped goods for one client.
// Lines are only appended while the fulfillment engine assembles it;
// once attached to a client it never changes.
type Invoice struct {
	ID        string
	ClientID  string
	CreatedAt time.Time
	Lines     []InvoiceLine
	Total     decimal.Decimal
}

// NewInvoice starts an empty invoice bound to clientID.
func NewInvoice(clientID string, at time.Time) *Invoice {
	return &Invoice{
		ID:        "I-" + uuid.NewString()[:8],
		ClientID:  clientID,
		CreatedAt: at,
		Total:     decimal.Zero,
	}
}

// RestoreInvoice rebuilds an archived invoice shell with its original
// identifier; lines are re-added afterwards and recompute the total.
func RestoreInvoice(id, clientID string, createdAt time.Time) *Invoice {
	return &Invoice{ID: id, ClientID: clientID, CreatedAt: createdAt, Total: decimal.Zero}
}

// AddLine appends a shipped line and accumulates the total.
func (i *Invoice) AddLine(productID, productName string, qty int, unitPrice decimal.Decimal) {
	line := InvoiceLine{ProductID: productID, ProductName: productName, Qty: qty, UnitPrice: unitPrice}
	i.Lines = append(i.Lines, line)
	i.Total = i.Total.Add(line.LineTotal())
}

// IsEmpty reports whether nothing was fulfilled onto this invoice.
func (i *Invoice) IsEmpty() bool {
	return len(i.Lines) == 0
}

func (i *Invoice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice %s for %s @ %s\n", i.ID, i.ClientID, i.CreatedAt.Format(time.RFC3339))
	for _, l := range i.Lines {
		fmt.Fprintf(&b, "  - %s\n", l)
	}
	fmt.Fprintf(&b, "TOTAL: $%s", i.Total.StringFixed(2))
	return b.String()
}

// internal/core/domain/client.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientIDPrefix is the prefix of canonical client identifiers ("C1", "C2", ...).
const ClientIDPrefix = "C"

// Client is a warehouse customer. A positive balance means the client
// owes the warehouse. The balance changes only through ApplyInvoice and
// RecordPayment so that it always equals the sum of invoice totals minus
// the sum of payments.
type Client struct {
	ID       string
	Name     string
	Address  string
	Balance  decimal.Decimal
	Wishlist *Wishlist
	Invoices []*Invoice
}

// NewClient builds a client with the given sequence number. Identifier
// assignment is owned by the client store; this just formats it.
func NewClient(name, address string, seq int) *Client {
	return &Client{
		ID:       fmt.Sprintf("%s%d", ClientIDPrefix, seq),
		Name:     name,
		Address:  address,
		Balance:  decimal.Zero,
		Wishlist: NewWishlist(),
	}
}

// ApplyInvoice appends inv to the client's invoice history and adds its
// total to the balance.
func (c *Client) ApplyInvoice(inv *Invoice) {
	c.Invoices = append(c.Invoices, inv)
	c.Balance = c.Balance.Add(inv.Total)
}

// RecordPayment subtracts amount from the balance. Amount must be positive.
func (c *Client) RecordPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("record payment: %w", ErrInvalidAmount)
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}

// HasOutstandingBalance reports whether the client still owes money.
func (c *Client) HasOutstandingBalance() bool {
	return c.Balance.IsPositive()
}

func (c *Client) String() string {
	return fmt.Sprintf("Client %s | %s | %s | Balance: $%s",
		c.ID, c.Name, c.Address, c.Balance.StringFixed(2))
}

// internal/cli/client_menu.go
package cli

import (
	"context"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

func (r *Runner) clientMenu(ctx context.Context) error {
	clientID := r.session.ClientID()

	r.printf("\n=== Client Menu (Client %s) ===\n", clientID)
	r.printf("1) Show client details\n")
	r.printf("2) Show list of products\n")
	r.printf("3) Show client transactions\n")
	r.printf("4) Add item to wishlist\n")
	r.printf("5) Display wishlist\n")
	r.printf("6) Place an order\n")
	r.printf("7) Show waitlisted items\n")
	r.printf("0) Logout\n")

	choice, err := r.promptLine("Choice")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		r.showClientDetails(clientID)
	case "2":
		r.showProductCatalog()
	case "3":
		r.showTransactions(clientID)
	case "4":
		return r.addToWishlist(ctx, clientID)
	case "5":
		r.showWishlist(clientID)
	case "6":
		r.placeOrder(ctx, clientID)
	case "7":
		r.showWaitlistedItems(clientID)
	case "0":
		r.dispatch(domain.EventLogout, "")
	default:
		r.printf("Invalid option.\n")
	}
	return nil
}

func (r *Runner) showClientDetails(clientID string) {
	c, err := r.warehouse.FindClient(clientID)
	if err != nil {
		r.printf("Client not found.\n")
		return
	}
	r.printf("Client ID: %s\n", c.ID)
	r.printf("Name: %s\n", c.Name)
	r.printf("Address: %s\n", c.Address)
	r.printf("Balance: $%s\n", c.Balance.StringFixed(2))
}

func (r *Runner) showProductCatalog() {
	for _, p := range r.warehouse.ListProducts() {
		r.printf("%s : %s | price $%s\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
}

func (r *Runner) showTransactions(clientID string) {
	c, err := r.warehouse.FindClient(clientID)
	if err != nil {
		r.printf("Client not found.\n")
		return
	}
	if len(c.Invoices) == 0 {
		r.printf("No transactions for this client.\n")
		return
	}
	for _, inv := range c.Invoices {
		r.printf("%s\n", inv)
	}
}

func (r *Runner) addToWishlist(ctx context.Context, clientID string) error {
	input, err := r.promptLine("Enter Product ID or Name")
	if err != nil {
		return err
	}
	p, ok := r.resolveProduct(input)
	if !ok {
		r.printf("Product not found.\n")
		return nil
	}

	qty, ok, err := r.promptInt("Enter quantity")
	if err != nil {
		return err
	}
	if !ok || qty <= 0 {
		r.printf("Quantity must be a positive whole number.\n")
		return nil
	}

	if err := r.warehouse.AddToWishlist(ctx, clientID, p.ID, qty); err != nil {
		r.printf("Error: %v\n", err)
		return nil
	}
	r.printf("Added %d of %s (ID %s) to wishlist for client %s.\n", qty, p.Name, p.ID, clientID)
	return nil
}

func (r *Runner) showWishlist(clientID string) {
	items, err := r.warehouse.GetWishlist(clientID)
	if err != nil {
		r.printf("Client not found.\n")
		return
	}
	if len(items) == 0 {
		r.printf("Wishlist is empty.\n")
		return
	}
	r.printf("Wishlist for client %s:\n", clientID)
	for _, item := range items {
		name := "?"
		if p, err := r.warehouse.FindProduct(item.ProductID); err == nil {
			name = p.Name
		}
		r.printf("- %s (%s) x %d\n", item.ProductID, name, item.Qty)
	}
}

func (r *Runner) placeOrder(ctx context.Context, clientID string) {
	inv, err := r.warehouse.PlaceOrder(ctx, clientID)
	if err != nil {
		r.printf("Error placing order: %v\n", err)
		return
	}
	if inv == nil {
		r.printf("Nothing could be fulfilled from wishlist (wishlist empty or all items waitlisted).\n")
		return
	}
	r.printf("Order placed for client %s.\n", clientID)
	r.printf("Invoice details:\n%s\n", inv)
}

func (r *Runner) showWaitlistedItems(clientID string) {
	entries, err := r.warehouse.GetClientWaitlist(clientID)
	if err != nil {
		r.printf("Client not found.\n")
		return
	}
	if len(entries) == 0 {
		r.printf("No outstanding waitlisted items for client %s.\n", clientID)
		return
	}
	r.printf("Waitlisted items for client %s:\n", clientID)
	for _, e := range entries {
		name := "?"
		if p, err := r.warehouse.FindProduct(e.ProductID); err == nil {
			name = p.Name
		}
		r.printf("- %s (%s) x %d (requested %s)\n",
			e.ProductID, name, e.Qty, e.RequestedAt.Format("2006-01-02 15:04:05"))
	}
}

// internal/cli/clerk_menu.go
package cli

import (
	"context"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

func (r *Runner) clerkMenu(ctx context.Context) error {
	r.printf("\n=== Clerk Menu ===\n")
	r.printf("1) Add client\n")
	r.printf("2) Show products (qty + price)\n")
	r.printf("3) Show all clients\n")
	r.printf("4) Show clients with outstanding balance\n")
	r.printf("5) Record payment from client\n")
	r.printf("6) Become client\n")
	r.printf("0) Logout\n")

	choice, err := r.promptLine("Choice")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return r.addClient(ctx)
	case "2":
		for _, p := range r.warehouse.ListProducts() {
			r.printf("%s\n", p)
		}
	case "3":
		for _, c := range r.warehouse.ListClients() {
			r.printf("%s : %s | balance=$%s\n", c.ID, c.Name, c.Balance.StringFixed(2))
		}
	case "4":
		for _, c := range r.warehouse.ListClients() {
			if c.HasOutstandingBalance() {
				r.printf("%s : %s | balance=$%s\n", c.ID, c.Name, c.Balance.StringFixed(2))
			}
		}
	case "5":
		return r.recordPayment(ctx)
	case "6":
		return r.becomeClient()
	case "0":
		r.dispatch(domain.EventLogout, "")
	default:
		r.printf("Invalid option.\n")
	}
	return nil
}

func (r *Runner) addClient(ctx context.Context) error {
	name, err := r.promptLine("Name")
	if err != nil {
		return err
	}
	address, err := r.promptLine("Address")
	if err != nil {
		return err
	}

	c, addErr := r.warehouse.AddClient(ctx, name, address)
	if addErr != nil {
		r.printf("Failed to add client: %v\n", addErr)
		return nil
	}
	r.printf("Added client with ID: %s\n", c.ID)
	return nil
}

func (r *Runner) recordPayment(ctx context.Context) error {
	input, err := r.promptLine("Client ID or Name")
	if err != nil {
		return err
	}
	c, ok := r.resolveClient(input)
	if !ok {
		r.printf("Unknown client. Payment cancelled.\n")
		return nil
	}

	amount, ok, err := r.promptDecimal("Amount")
	if err != nil {
		return err
	}
	if !ok {
		r.printf("Invalid amount. Payment cancelled.\n")
		return nil
	}
	if !amount.IsPositive() {
		r.printf("Amount must be positive. Payment cancelled.\n")
		return nil
	}

	// Always use the canonical id, not the user's spelling.
	if payErr := r.warehouse.RecordPayment(ctx, c.ID, amount); payErr != nil {
		r.printf("Error: %v\n", payErr)
		return nil
	}
	r.printf("Payment of $%s recorded for client %s (%s).\n", amount.StringFixed(2), c.ID, c.Name)
	return nil
}

func (r *Runner) becomeClient() error {
	input, err := r.promptLine("Enter Client ID or Name to become")
	if err != nil {
		return err
	}
	c, ok := r.resolveClient(input)
	if !ok {
		r.printf("Invalid client ID/name.\n")
		return nil
	}
	r.dispatch(domain.EventBecomeClient, c.ID)
	return nil
}

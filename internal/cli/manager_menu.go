// internal/cli/manager_menu.go
package cli

import (
	"context"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

func (r *Runner) managerMenu(ctx context.Context) error {
	r.printf("\n=== Manager Menu ===\n")
	r.printf("1) Add product\n")
	r.printf("2) Display waitlist for a product\n")
	r.printf("3) Receive shipment\n")
	if r.reports != nil {
		r.printf("4) Export warehouse report\n")
	}
	r.printf("5) Become clerk\n")
	r.printf("0) Logout\n")

	choice, err := r.promptLine("Choice")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return r.addProduct(ctx)
	case "2":
		return r.showProductWaitlist()
	case "3":
		return r.receiveShipment(ctx)
	case "4":
		if r.reports == nil {
			r.printf("Invalid option.\n")
			return nil
		}
		r.exportReport(ctx)
	case "5":
		r.dispatch(domain.EventBecomeClerk, "")
	case "0":
		r.dispatch(domain.EventLogout, "")
	default:
		r.printf("Invalid option.\n")
	}
	return nil
}

func (r *Runner) addProduct(ctx context.Context) error {
	name, err := r.promptLine("Product name")
	if err != nil {
		return err
	}

	price, ok, err := r.promptDecimal("Unit price")
	if err != nil {
		return err
	}
	if !ok || price.IsNegative() {
		r.printf("Invalid price. Product not added.\n")
		return nil
	}

	qty, ok, err := r.promptInt("Initial quantity")
	if err != nil {
		return err
	}
	if !ok {
		r.printf("Invalid quantity. Product not added.\n")
		return nil
	}
	if qty < 0 {
		r.printf("Quantity must be non-negative. Product not added.\n")
		return nil
	}

	p, addErr := r.warehouse.AddProduct(ctx, name, price, qty)
	if addErr != nil {
		r.printf("Failed to add product: %v\n", addErr)
		return nil
	}
	r.printf("Added product with ID: %s\n", p.ID)
	return nil
}

func (r *Runner) showProductWaitlist() error {
	input, err := r.promptLine("Product ID or Name")
	if err != nil {
		return err
	}
	p, ok := r.resolveProduct(input)
	if !ok {
		r.printf("Product not found.\n")
		return nil
	}

	entries, wlErr := r.warehouse.GetProductWaitlist(p.ID)
	if wlErr != nil {
		r.printf("Error: %v\n", wlErr)
		return nil
	}
	if len(entries) == 0 {
		r.printf("No waitlist entries for product %s.\n", p.ID)
		return nil
	}
	r.printf("Waitlist for %s (%s):\n", p.Name, p.ID)
	for _, e := range entries {
		r.printf("- Client %s waiting for %d (requested %s)\n",
			e.ClientID, e.Qty, e.RequestedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (r *Runner) receiveShipment(ctx context.Context) error {
	input, err := r.promptLine("Product ID or Name")
	if err != nil {
		return err
	}
	p, ok := r.resolveProduct(input)
	if !ok {
		r.printf("Product not found. Shipment cancelled.\n")
		return nil
	}

	qty, ok, err := r.promptInt("Quantity received")
	if err != nil {
		return err
	}
	if !ok {
		r.printf("Invalid quantity. Shipment cancelled.\n")
		return nil
	}
	if qty <= 0 {
		r.printf("Quantity must be positive. Shipment cancelled.\n")
		return nil
	}

	if shipErr := r.warehouse.ReceiveShipment(ctx, p.ID, qty); shipErr != nil {
		r.printf("Error receiving shipment: %v\n", shipErr)
		return nil
	}
	r.printf("Shipment of %d units received for %s (%s).\n", qty, p.Name, p.ID)
	return nil
}

func (r *Runner) exportReport(ctx context.Context) {
	waitlisted := func(productID string) int {
		entries, err := r.warehouse.GetProductWaitlist(productID)
		if err != nil {
			return 0
		}
		return len(entries)
	}
	path, err := r.reports.WriteWarehouseReport(ctx, r.warehouse.ListProducts(), waitlisted, r.warehouse.ListClients())
	if err != nil {
		r.printf("Failed to export report: %v\n", err)
		return
	}
	r.printf("Report written to %s\n", path)
}

// internal/cli/opening_menu.go
package cli

import (
	"context"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

func (r *Runner) openingMenu(_ context.Context) error {
	r.printf("\n=== Opening Menu ===\n")
	r.printf("1) Login as Client\n")
	r.printf("2) Login as Clerk\n")
	r.printf("3) Login as Manager\n")
	r.printf("0) Exit\n")

	choice, err := r.promptLine("Choice")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return r.clientLogin()
	case "2":
		r.dispatch(domain.EventLoginClerk, "")
	case "3":
		r.dispatch(domain.EventLoginManager, "")
	case "0":
		r.running = false
	default:
		r.printf("Invalid option.\n")
	}
	return nil
}

func (r *Runner) clientLogin() error {
	input, err := r.promptLine("Enter Client ID or Name")
	if err != nil {
		return err
	}
	c, ok := r.resolveClient(input)
	if !ok {
		r.printf("Unknown client. Please check ID/name.\n")
		return nil
	}
	r.dispatch(domain.EventLoginClient, c.ID)
	return nil
}

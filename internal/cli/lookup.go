// internal/cli/lookup.go
package cli

import (
	"strings"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

// resolveClient matches human-entered text against clients: identifier
// match is case-insensitive, name match is exact but case-insensitive.
// Stores only answer canonical ids, so resolution lives here.
func (r *Runner) resolveClient(input string) (*domain.Client, bool) {
	target := strings.ToLower(strings.TrimSpace(input))
	for _, c := range r.warehouse.ListClients() {
		if strings.EqualFold(c.ID, input) {
			return c, true
		}
		if strings.ToLower(strings.TrimSpace(c.Name)) == target {
			return c, true
		}
	}
	return nil, false
}

// resolveProduct matches human-entered text against products, same
// rules as resolveClient.
func (r *Runner) resolveProduct(input string) (*domain.Product, bool) {
	target := strings.ToLower(strings.TrimSpace(input))
	for _, p := range r.warehouse.ListProducts() {
		if strings.EqualFold(p.ID, input) {
			return p, true
		}
		if strings.ToLower(strings.TrimSpace(p.Name)) == target {
			return p, true
		}
	}
	return nil, false
}

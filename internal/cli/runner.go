// internal/cli/runner.go

// Package cli is the interactive session adapter: it renders role menus,
// parses human input, resolves id-or-name lookups and dispatches session
// FSM events. All business rules stay behind the warehouse service; the
// menus only decide what to ask and how to print the answer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ammerola/warehouse-be/internal/adapters/export"
	"github.com/ammerola/warehouse-be/internal/core/domain"
	"github.com/ammerola/warehouse-be/internal/core/ports"
)

// Runner drives one interactive warehouse session from a prompt loop.
type Runner struct {
	session   *domain.Session
	warehouse ports.WarehouseService
	reports   *export.ReportWriter
	in        *bufio.Reader
	out       io.Writer
	logger    *slog.Logger
	running   bool
}

// NewRunner wires a session runner. The reports writer may be nil; the
// export menu entry is hidden then.
func NewRunner(warehouse ports.WarehouseService, reports *export.ReportWriter, in io.Reader, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		session:   domain.NewSession(),
		warehouse: warehouse,
		reports:   reports,
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger.With(slog.String("service", "cli")),
	}
}

// Run loops until the user exits from the opening menu or input ends.
func (r *Runner) Run(ctx context.Context) error {
	r.running = true
	for r.running {
		var err error
		switch r.session.State() {
		case domain.StateAnonymous:
			err = r.openingMenu(ctx)
		case domain.StateClient:
			err = r.clientMenu(ctx)
		case domain.StateClerk:
			err = r.clerkMenu(ctx)
		case domain.StateManager:
			err = r.managerMenu(ctx)
		}
		if err != nil {
			if err == io.EOF {
				r.printf("\nInput closed. Exiting.\n")
				return nil
			}
			return err
		}
	}
	r.printf("Exiting system. Goodbye.\n")
	return nil
}

// dispatch forwards an FSM event and reports rejections to the user
// without leaving the current menu.
func (r *Runner) dispatch(event domain.SessionEvent, clientID string) {
	if _, err := r.session.Dispatch(event, clientID); err != nil {
		r.printf("Invalid action for this state.\n")
		r.logger.Debug("session event rejected",
			slog.String("event", string(event)),
			slog.String("state", string(r.session.State())))
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// cmd/warehouse/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ammerola/warehouse-be/internal/adapters/db"
	"github.com/ammerola/warehouse-be/internal/adapters/export"
	"github.com/ammerola/warehouse-be/internal/adapters/memory"
	"github.com/ammerola/warehouse-be/internal/cli"
	"github.com/ammerola/warehouse-be/internal/core/ports"
	"github.com/ammerola/warehouse-be/internal/core/services"
	"github.com/ammerola/warehouse-be/internal/pkg/config"
	"github.com/ammerola/warehouse-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("info", "text")
	slogger.Info("starting warehouse session",
		slog.String("version", Version),
		slog.String("build_time", BuildTime))

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)

	ctx := context.Background()

	warehouse := services.NewWarehouseService(
		memory.NewClientStore(),
		memory.NewProductStore(),
		slogger,
	)

	// The archive is optional: without it the session is purely
	// in-memory and state is lost on exit.
	var archive ports.WarehouseArchive
	if cfg.Database.Enabled {
		database, err := setupArchiveDatabase(ctx, cfg, slogger)
		if err != nil {
			slogger.Error("failed to set up archive database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.Close()

		archive = db.NewWarehouseArchive(database, slogger)
		state, ok, err := archive.Load(ctx)
		if err != nil {
			slogger.Error("failed to load warehouse snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if ok {
			warehouse.RestoreState(state)
		}
	}

	if cfg.App.SeedDemo && len(warehouse.ListClients()) == 0 && len(warehouse.ListProducts()) == 0 {
		seedDemoData(ctx, warehouse, slogger)
	}

	reports := export.NewReportWriter(cfg.Export.Directory, slogger)

	runner := cli.NewRunner(warehouse, reports, os.Stdin, os.Stdout, slogger)
	if err := runner.Run(ctx); err != nil {
		slogger.Error("session ended with error", slog.String("error", err.Error()))
	}

	if archive != nil {
		if err := archive.Save(ctx, warehouse.Snapshot()); err != nil {
			slogger.Error("failed to save warehouse snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func setupArchiveDatabase(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*db.Database, error) {
	if err := db.RunMigrations(cfg.DatabaseURL(), slogger); err != nil {
		return nil, err
	}
	return db.NewDatabase(ctx, &db.Config{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConnections: cfg.Database.MaxConnections,
		MinConnections: cfg.Database.MinConnections,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	}, slogger)
}

// seedDemoData loads a small data set so a first session has something
// to browse.
func seedDemoData(ctx context.Context, warehouse *services.WarehouseService, slogger *slog.Logger) {
	clients := []struct{ name, address string }{
		{"Ada Field", "12 Canal St"},
		{"Marcus Webb", "401 Harbor Ave"},
		{"Priya Shah", "77 Mill Rd"},
	}
	for _, c := range clients {
		if _, err := warehouse.AddClient(ctx, c.name, c.address); err != nil {
			slogger.Warn("failed to seed client", slog.String("name", c.name), slog.String("error", err.Error()))
		}
	}

	products := []struct {
		name  string
		price string
		stock int
	}{
		{"Claw Hammer", "18.50", 40},
		{"Cordless Drill", "129.99", 12},
		{"Work Gloves", "9.95", 200},
		{"Tape Measure", "12.25", 75},
	}
	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			continue
		}
		if _, err := warehouse.AddProduct(ctx, p.name, price, p.stock); err != nil {
			slogger.Warn("failed to seed product", slog.String("name", p.name), slog.String("error", err.Error()))
		}
	}

	slogger.Info("demo data seeded",
		slog.Int("clients", len(clients)),
		slog.Int("products", len(products)))
}

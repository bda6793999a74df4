// internal/adapters/export/xlsx.go

// Package export writes manager-facing warehouse reports as Excel
// workbooks: current stock with queued waitlist demand, and clients
// with outstanding balances.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

// ReportWriter generates xlsx warehouse reports into a directory.
type ReportWriter struct {
	dir    string
	logger *slog.Logger
}

// NewReportWriter creates a report writer targeting dir.
func NewReportWriter(dir string, logger *slog.Logger) *ReportWriter {
	return &ReportWriter{
		dir:    dir,
		logger: logger.With(slog.String("service", "export")),
	}
}

// WriteWarehouseReport writes a two-sheet workbook (Products,
// Receivables) and returns the file path.
func (w *ReportWriter) WriteWarehouseReport(ctx context.Context, products []*domain.Product, waitlisted func(productID string) int, clients []*domain.Client) (string, error) {
	file := xlsx.NewFile()

	if err := w.addProductSheet(file, products, waitlisted); err != nil {
		return "", err
	}
	if err := w.addReceivablesSheet(file, clients); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("warehouse_report_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(w.dir, filename)
	if err := file.Save(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	w.logger.InfoContext(ctx, "warehouse report written",
		slog.String("path", path),
		slog.Int("products", len(products)),
		slog.Int("clients", len(clients)))
	return path, nil
}

func (w *ReportWriter) addProductSheet(file *xlsx.File, products []*domain.Product, waitlisted func(productID string) int) error {
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to add products sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"Product ID", "Name", "Unit Price", "In Stock", "Waitlisted Entries"} {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetInt(waitlisted(p.ID))
	}
	return nil
}

func (w *ReportWriter) addReceivablesSheet(file *xlsx.File, clients []*domain.Client) error {
	sheet, err := file.AddSheet("Receivables")
	if err != nil {
		return fmt.Errorf("failed to add receivables sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"Client ID", "Name", "Address", "Balance", "Invoices"} {
		header.AddCell().SetString(h)
	}

	for _, c := range clients {
		if !c.HasOutstandingBalance() {
			continue
		}
		row := sheet.AddRow()
		row.AddCell().SetString(c.ID)
		row.AddCell().SetString(c.Name)
		row.AddCell().SetString(c.Address)
		row.AddCell().SetString(c.Balance.StringFixed(2))
		row.AddCell().SetInt(len(c.Invoices))
	}
	return nil
}

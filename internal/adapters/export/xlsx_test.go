package export_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/warehouse-be/internal/adapters/export"
	"github.com/ammerola/warehouse-be/internal/core/domain"
	"github.com/ammerola/warehouse-be/test/helpers"
)

func TestReportWriter_WriteWarehouseReport(t *testing.T) {
	dir := t.TempDir()
	writer := export.NewReportWriter(dir, helpers.TestLogger())

	products := []*domain.Product{
		domain.NewProduct("Claw Hammer", decimal.RequireFromString("18.50"), 3, 1),
		domain.NewProduct("Work Gloves", decimal.RequireFromString("9.95"), 20, 2),
	}
	waitlisted := func(productID string) int {
		if productID == "P1" {
			return 2
		}
		return 0
	}

	owing := helpers.CreateTestClient(1, func(c *domain.Client) {
		c.Balance = decimal.RequireFromString("75.40")
	})
	settled := helpers.CreateTestClient(2)

	path, err := writer.WriteWarehouseReport(context.Background(),
		products, waitlisted, []*domain.Client{owing, settled})
	require.NoError(t, err)

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	productSheet, ok := file.Sheet["Products"]
	require.True(t, ok)
	assert.Equal(t, 3, productSheet.MaxRow, "header plus one row per product")

	cell, err := productSheet.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "P1", cell.String())
	cell, err = productSheet.Cell(1, 4)
	require.NoError(t, err)
	waitCount, err := cell.Int()
	require.NoError(t, err)
	assert.Equal(t, 2, waitCount)

	receivables, ok := file.Sheet["Receivables"]
	require.True(t, ok)
	assert.Equal(t, 2, receivables.MaxRow, "settled clients are excluded")

	cell, err = receivables.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, owing.ID, cell.String())
	cell, err = receivables.Cell(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "75.40", cell.String())
}

func TestReportWriter_FailsOnMissingDirectory(t *testing.T) {
	writer := export.NewReportWriter("/nonexistent/report/dir", helpers.TestLogger())

	_, err := writer.WriteWarehouseReport(context.Background(),
		nil, func(string) int { return 0 }, nil)
	require.Error(t, err)
}

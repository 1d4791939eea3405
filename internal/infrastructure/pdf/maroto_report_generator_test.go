package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-tracker/internal/application/dto"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/Inventario-tracker/internal/infrastructure/pdf"
)

func TestMarotoReportGenerator_Render(t *testing.T) {
	laptop := entity.Product{ID: 1, Name: "Laptop", Price: decimal.RequireFromString("999.99"), StockQuantity: 15}
	cable := entity.Product{ID: 3, Name: "USB-C Cable", Price: decimal.RequireFromString("19.99"), StockQuantity: 3}

	tests := []struct {
		name   string
		report *dto.InventoryReport
	}{
		{
			name: "con stock bajo",
			report: &dto.InventoryReport{
				Title: "Inventario", GeneratedAt: time.Now(), Threshold: 5,
				Products: []entity.Product{laptop, cable}, LowStock: []entity.Product{cable},
				TotalValue: decimal.RequireFromString("15059.82"), AveragePrice: decimal.RequireFromString("509.99"),
			},
		},
		{
			name:   "catálogo vacío",
			report: &dto.InventoryReport{Title: "Vacío", GeneratedAt: time.Now(), Threshold: 5},
		},
	}

	g := pdf.NewMarotoReportGenerator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := g.Render(context.Background(), tc.report)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe comenzar con la firma PDF")
		})
	}
}

func TestMarotoReportGenerator_Nil(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	_, err := g.Render(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}

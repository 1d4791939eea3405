package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
)

// InventorySummaryResponse totales del catálogo.
type InventorySummaryResponse struct {
	ProductCount int             `json:"product_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
	AveragePrice decimal.Decimal `json:"average_price"`
	LowStock     int             `json:"low_stock"` // productos bajo el umbral
	Threshold    int             `json:"threshold"` // umbral de stock bajo usado
}

// InventoryReport instantánea del catálogo para los generadores de reportes (PDF, XML).
type InventoryReport struct {
	Title        string
	GeneratedAt  time.Time
	Threshold    int
	Products     []entity.Product // todos, por ID
	LowStock     []entity.Product // stock < Threshold, por stock ascendente
	TotalValue   decimal.Decimal
	AveragePrice decimal.Decimal
}

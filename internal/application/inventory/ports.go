package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-tracker/internal/application/dto"
)

// ReportRenderer genera la representación de un reporte de inventario (PDF, XML, ...).
type ReportRenderer interface {
	Render(ctx context.Context, report *dto.InventoryReport) ([]byte, error)
	ContentType() string
	Extension() string // sin punto: "pdf", "xml"
}

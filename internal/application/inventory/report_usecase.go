package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-tracker/internal/application/dto"
	"github.com/jhoicas/Inventario-tracker/internal/domain"
)

// ReportUseCase arma la instantánea del catálogo y la entrega al renderer del formato pedido.
// No toma locks: el host que comparte el Manager debe serializar la llamada a Snapshot.
type ReportUseCase struct {
	manager   *Manager
	title     string
	threshold int
	renderers map[string]ReportRenderer
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso; los renderers se indexan por Extension().
func NewReportUseCase(manager *Manager, title string, threshold int, renderers ...ReportRenderer) *ReportUseCase {
	byFormat := make(map[string]ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Extension()] = r
	}
	return &ReportUseCase{
		manager:   manager,
		title:     title,
		threshold: threshold,
		renderers: byFormat,
		now:       time.Now,
	}
}

// Snapshot copia el estado actual del catálogo.
func (uc *ReportUseCase) Snapshot() *dto.InventoryReport {
	return &dto.InventoryReport{
		Title:        uc.title,
		GeneratedAt:  uc.now(),
		Threshold:    uc.threshold,
		Products:     uc.manager.GetAllProducts(),
		LowStock:     uc.manager.GetLowStockProducts(uc.threshold),
		TotalValue:   uc.manager.CalculateTotalInventoryValue(),
		AveragePrice: uc.manager.AveragePrice(),
	}
}

// Render genera el reporte en el formato indicado ("pdf", "xml").
// Devuelve los bytes, el content type y un nombre de archivo sugerido.
func (uc *ReportUseCase) Render(ctx context.Context, report *dto.InventoryReport, format string) ([]byte, string, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := uc.renderers[format]
	if !ok {
		return nil, "", "", fmt.Errorf("formato de reporte %q no soportado: %w", format, domain.ErrUnsupportedFormat)
	}
	out, err := r.Render(ctx, report)
	if err != nil {
		return nil, "", "", fmt.Errorf("generar reporte %s: %w", format, err)
	}
	filename := fmt.Sprintf("inventario_%s.%s", report.GeneratedAt.Format("20060102_150405"), r.Extension())
	return out, r.ContentType(), filename, nil
}

// Formats formatos disponibles, en orden alfabético.
func (uc *ReportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tracker/internal/application/dto"
	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
)

// InventoryHandler consultas agregadas y reportes del catálogo.
type InventoryHandler struct {
	catalog   *catalog
	reports   *inventory.ReportUseCase
	threshold int
}

func newInventoryHandler(cat *catalog, reports *inventory.ReportUseCase, threshold int) *InventoryHandler {
	return &InventoryHandler{catalog: cat, reports: reports, threshold: threshold}
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  Productos con stock menor al umbral, ordenados por stock ascendente.
// @Tags         inventory
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	threshold := h.threshold
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return badRequest(c, "INVALID_QUERY", "threshold debe ser un entero no negativo")
		}
		threshold = n
	}
	var list []entity.Product
	_ = h.catalog.do(func(m *inventory.Manager) error {
		list = m.GetLowStockProducts(threshold)
		return nil
	})
	return c.JSON(dto.ToProductList(list))
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	var out dto.InventorySummaryResponse
	_ = h.catalog.do(func(m *inventory.Manager) error {
		out = dto.InventorySummaryResponse{
			ProductCount: m.Count(),
			TotalValue:   m.CalculateTotalInventoryValue(),
			AveragePrice: m.AveragePrice(),
			LowStock:     len(m.GetLowStockProducts(h.threshold)),
			Threshold:    h.threshold,
		}
		return nil
	})
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar reporte de inventario
// @Tags         inventory
// @Produce      application/pdf
// @Produce      application/xml
// @Param        format  query  string  false  "pdf (por defecto) o xml"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	format := c.Query("format", "pdf")

	// La instantánea se toma con el lock; el render trabaja sobre la copia.
	var report *dto.InventoryReport
	_ = h.catalog.do(func(*inventory.Manager) error {
		report = h.reports.Snapshot()
		return nil
	})

	out, contentType, filename, err := h.reports.Render(c.Context(), report, format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(out)
}

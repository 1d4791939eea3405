package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tracker/docs"
	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/Inventario-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager           *inventory.Manager
	Reports           *inventory.ReportUseCase
	LowStockThreshold int
	Log               *logger.Logger
}

// Router registra las rutas de la API. Todas las rutas comparten un único lock sobre el Manager.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.LowStockThreshold <= 0 {
		deps.LowStockThreshold = inventory.DefaultLowStockThreshold
	}
	cat := &catalog{manager: deps.Manager}
	validate := validator.New()

	app.Use(RequestLogger(deps.Log.Component("http")))

	// Documento OpenAPI generado con swag
	app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := newProductHandler(cat, validate)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Patch("/:id/stock", productHandler.UpdateStock)

	// Inventory
	inv := api.Group("/inventory")
	inventoryHandler := newInventoryHandler(cat, deps.Reports, deps.LowStockThreshold)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/summary", inventoryHandler.Summary)
	inv.Get("/report", inventoryHandler.Report)
}

package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-tracker/internal/application/dto"
	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	catalog  *catalog
	validate *validator.Validate
}

func newProductHandler(cat *catalog, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{catalog: cat, validate: validate}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.validate.Struct(in); err != nil {
		return respondError(c, err)
	}
	var created entity.Product
	err := h.catalog.do(func(m *inventory.Manager) error {
		p, err := m.AddProduct(in.Name, in.Price, in.StockQuantity)
		created = p
		return err
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(created))
}

// List godoc
// @Summary      Listar productos
// @Description  Sin filtros devuelve todo el catálogo. q filtra por nombre; min_price y max_price por rango de precio.
// @Tags         products
// @Produce      json
// @Param        q          query  string  false  "Texto a buscar en el nombre"
// @Param        min_price  query  string  false  "Precio mínimo (incluido, por defecto 0)"
// @Param        max_price  query  string  false  "Precio máximo (incluido, por defecto 99999.99)"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := c.Query("q")
	minRaw, maxRaw := c.Query("min_price"), c.Query("max_price")

	byPrice := minRaw != "" || maxRaw != ""
	minPrice, maxPrice := decimal.Zero, inventory.MaxPrice
	if minRaw != "" {
		d, err := decimal.NewFromString(minRaw)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "min_price debe ser un número")
		}
		minPrice = d
	}
	if maxRaw != "" {
		d, err := decimal.NewFromString(maxRaw)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "max_price debe ser un número")
		}
		maxPrice = d
	}

	var list []entity.Product
	_ = h.catalog.do(func(m *inventory.Manager) error {
		switch {
		case byPrice:
			list = m.FindProductsInPriceRange(minPrice, maxPrice)
			if q != "" {
				list = intersect(list, m.SearchProductsByName(q))
			}
		case q != "":
			list = m.SearchProductsByName(q)
		default:
			list = m.GetAllProducts()
		}
		return nil
	})
	return c.JSON(dto.ToProductList(list))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un entero")
	}
	var found entity.Product
	err = h.catalog.do(func(m *inventory.Manager) error {
		p, err := m.FindProductByID(id)
		found = p
		return err
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(found))
}

// Update godoc
// @Summary      Editar nombre y/o precio
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un entero")
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.validate.Struct(in); err != nil {
		return respondError(c, err)
	}
	var updated entity.Product
	err = h.catalog.do(func(m *inventory.Manager) error {
		p, err := m.UpdateProduct(id, inventory.ProductPatch{Name: in.Name, Price: in.Price})
		updated = p
		return err
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(updated))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un entero")
	}
	err = h.catalog.do(func(m *inventory.Manager) error {
		return m.RemoveProduct(id)
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStock godoc
// @Summary      Ajustar stock
// @Description  delta positivo repone, negativo descuenta. Se aplica completo o no se aplica.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "Variación"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un entero")
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.validate.Struct(in); err != nil {
		return respondError(c, err)
	}
	var updated entity.Product
	err = h.catalog.do(func(m *inventory.Manager) error {
		if err := m.UpdateStock(id, *in.Delta); err != nil {
			return err
		}
		p, err := m.FindProductByID(id)
		updated = p
		return err
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(updated))
}

// intersect conserva los productos de a cuyo ID aparece en b (mantiene el orden de a).
func intersect(a, b []entity.Product) []entity.Product {
	in := make(map[int]struct{}, len(b))
	for _, p := range b {
		in[p.ID] = struct{}{}
	}
	out := make([]entity.Product, 0, len(a))
	for _, p := range a {
		if _, ok := in[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

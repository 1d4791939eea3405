package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0,max=9999"`
}

// UpdateProductRequest entrada para editar nombre y/o precio (el stock se mueve con UpdateStockRequest).
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// UpdateStockRequest variación de stock: positiva repone, negativa descuenta.
type UpdateStockRequest struct {
	Delta *int `json:"delta" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Value         decimal.Decimal `json:"value"` // Price * StockQuantity
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ToProductResponse convierte la entidad en su representación de salida.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Value:         p.Value(),
	}
}

// ToProductList convierte una lista de entidades.
func ToProductList(products []entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}

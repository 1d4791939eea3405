package inventory

import (
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TotalValue implementa la valorización del inventario (servicio de dominio).
// Valor = Σ (Precio * Stock); cero si no hay productos.
func TotalValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Value())
	}
	return total
}

// AveragePrice promedio simple de precios unitarios (no ponderado por stock).
func AveragePrice(products []entity.Product) decimal.Decimal {
	if len(products) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(products))))
}

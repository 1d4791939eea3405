package entity

import (
	"fmt"

	"github.com/jhoicas/Inventario-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// Product representa una línea del inventario. ID lo asigna el Manager y no cambia.
// Name y Price los edita el Manager; StockQuantity solo cambia vía IncreaseStock/DecreaseStock.
type Product struct {
	ID            int
	Name          string
	Price         decimal.Decimal
	StockQuantity int
}

// MaxStockQuantity tope de unidades en existencia de un producto.
const MaxStockQuantity = 9999

// NewProduct construye un producto. La validación de rangos es responsabilidad del Manager.
func NewProduct(id int, name string, price decimal.Decimal, quantity int) *Product {
	return &Product{ID: id, Name: name, Price: price, StockQuantity: quantity}
}

// IncreaseStock suma amount al stock. amount debe ser positivo y el resultado no puede
// superar MaxStockQuantity. No hay mutación si falla.
func (p *Product) IncreaseStock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("aumentar stock en %d: %w", amount, domain.ErrInvalidArgument)
	}
	if amount > MaxStockQuantity-p.StockQuantity {
		return fmt.Errorf("aumentar stock en %d (actual %d, máximo %d): %w", amount, p.StockQuantity, MaxStockQuantity, domain.ErrInvalidArgument)
	}
	p.StockQuantity += amount
	return nil
}

// DecreaseStock resta amount del stock sin dejarlo negativo. No hay mutación si falla.
func (p *Product) DecreaseStock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("disminuir stock en %d: %w", amount, domain.ErrInvalidArgument)
	}
	if amount > p.StockQuantity {
		return fmt.Errorf("disminuir stock en %d (disponible %d): %w", amount, p.StockQuantity, domain.ErrInsufficientStock)
	}
	p.StockQuantity -= amount
	return nil
}

// Value devuelve Price * StockQuantity.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}

// String resumen de una línea: "ID: 1 | Laptop | Price: $999.99 | Stock: 15".
func (p Product) String() string {
	return fmt.Sprintf("ID: %d | %s | Price: %s | Stock: %d", p.ID, p.Name, FormatCurrency(p.Price), p.StockQuantity)
}

// TableRow fila de ancho fijo para el listado tabular (ver TableHeader/TableFooter).
func (p Product) TableRow() string {
	return fmt.Sprintf("│ %3d │ %-20s │ $%8s │ %6d │", p.ID, p.Name, p.Price.StringFixed(2), p.StockQuantity)
}

// Encabezado y cierre de la tabla que acompaña a TableRow.
const (
	TableHeader = "┌─────┬──────────────────────┬──────────┬────────┐\n" +
		"│ ID  │ Product Name         │ Price    │ Stock  │\n" +
		"├─────┼──────────────────────┼──────────┼────────┤"
	TableFooter = "└─────┴──────────────────────┴──────────┴────────┘"
)

// FormatCurrency formatea un monto con dos decimales: $1234.50.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

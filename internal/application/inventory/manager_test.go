package inventory_test

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/Inventario-tracker/internal/domain"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ids(products []entity.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func seeded(t *testing.T) *inventory.Manager {
	t.Helper()
	m := inventory.NewManager(nil)
	require.NoError(t, inventory.Seed(m))
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_AsignaIDsConsecutivos(t *testing.T) {
	m := inventory.NewManager(nil)

	for want := 1; want <= 5; want++ {
		p, err := m.AddProduct("Producto", price("1.00"), want)
		require.NoError(t, err)
		assert.Equal(t, want, p.ID)

		found, err := m.FindProductByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, found, "FindProductByID debe devolver el producto recién creado")
	}
}

func TestAddProduct_RecortaNombre(t *testing.T) {
	m := inventory.NewManager(nil)
	p, err := m.AddProduct("  Monitor  ", price("249.99"), 8)
	require.NoError(t, err)
	assert.Equal(t, "Monitor", p.Name)
}

func TestAddProduct_LimitesValidos(t *testing.T) {
	m := inventory.NewManager(nil)

	_, err := m.AddProduct(strings.Repeat("a", inventory.MaxNameLength), price("99999.99"), inventory.MaxQuantity)
	require.NoError(t, err)
	_, err = m.AddProduct("x", price("0.01"), 0)
	require.NoError(t, err)
	_, err = m.AddProduct(strings.Repeat("ñ", inventory.MaxNameLength), price("1"), 1)
	require.NoError(t, err, "la longitud se mide en caracteres, no en bytes")
}

func TestAddProduct_EntradasInvalidas(t *testing.T) {
	tests := []struct {
		name     string
		pName    string
		price    string
		quantity int
	}{
		{name: "nombre vacío", pName: "", price: "1.00", quantity: 1},
		{name: "nombre solo espacios", pName: "   ", price: "1.00", quantity: 1},
		{name: "nombre de 101 caracteres", pName: strings.Repeat("a", 101), price: "1.00", quantity: 1},
		{name: "precio cero", pName: "A", price: "0", quantity: 1},
		{name: "precio negativo", pName: "A", price: "-5", quantity: 1},
		{name: "precio sobre el máximo", pName: "A", price: "100000.00", quantity: 1},
		{name: "precio apenas sobre el máximo", pName: "A", price: "99999.991", quantity: 1},
		{name: "cantidad negativa", pName: "A", price: "1.00", quantity: -1},
		{name: "cantidad sobre el máximo", pName: "A", price: "1.00", quantity: 10000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := seeded(t)
			before := m.Count()

			_, err := m.AddProduct(tc.pName, price(tc.price), tc.quantity)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, before, m.Count(), "no se crea producto")

			next, err := m.AddProduct("Siguiente", price("1.00"), 1)
			require.NoError(t, err)
			assert.Equal(t, before+1, next.ID, "el contador no avanza con una validación fallida")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock / RemoveProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_WidgetCicloCompleto(t *testing.T) {
	m := inventory.NewManager(nil)

	p, err := m.AddProduct("Widget", price("9.99"), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 10, p.StockQuantity)

	require.NoError(t, m.UpdateStock(1, -3))
	got, _ := m.FindProductByID(1)
	assert.Equal(t, 7, got.StockQuantity)

	assert.ErrorIs(t, m.UpdateStock(1, -100), domain.ErrInsufficientStock)
	got, _ = m.FindProductByID(1)
	assert.Equal(t, 7, got.StockQuantity, "sin aplicación parcial")

	require.NoError(t, m.RemoveProduct(1))
	_, err = m.FindProductByID(1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock_Errores(t *testing.T) {
	m := seeded(t)

	assert.ErrorIs(t, m.UpdateStock(99, 1), domain.ErrNotFound)
	assert.ErrorIs(t, m.UpdateStock(1, 0), domain.ErrInvalidArgument)

	require.NoError(t, m.UpdateStock(1, 5))
	p, _ := m.FindProductByID(1)
	assert.Equal(t, 20, p.StockQuantity)
}

func TestUpdateStock_NoSuperaElMaximo(t *testing.T) {
	m := inventory.NewManager(nil)
	_, err := m.AddProduct("Widget", price("9.99"), 10)
	require.NoError(t, err)

	assert.ErrorIs(t, m.UpdateStock(1, math.MaxInt), domain.ErrInvalidArgument)
	assert.ErrorIs(t, m.UpdateStock(1, inventory.MaxQuantity), domain.ErrInvalidArgument)
	p, _ := m.FindProductByID(1)
	assert.Equal(t, 10, p.StockQuantity)

	require.NoError(t, m.UpdateStock(1, inventory.MaxQuantity-10))
	p, _ = m.FindProductByID(1)
	assert.Equal(t, inventory.MaxQuantity, p.StockQuantity)
}

func TestRemoveProduct_IDNoSeReutiliza(t *testing.T) {
	m := seeded(t)

	assert.ErrorIs(t, m.RemoveProduct(42), domain.ErrNotFound)
	assert.Equal(t, 5, m.Count())

	require.NoError(t, m.RemoveProduct(5))
	p, err := m.AddProduct("Webcam", price("59.90"), 4)
	require.NoError(t, err)
	assert.Equal(t, 6, p.ID)
	assert.Equal(t, []int{1, 2, 3, 4, 6}, ids(m.GetAllProducts()))
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct(t *testing.T) {
	m := seeded(t)
	name := " Laptop Pro "
	newPrice := price("1299.00")

	p, err := m.UpdateProduct(1, inventory.ProductPatch{Name: &name, Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", p.Name)
	assert.True(t, p.Price.Equal(newPrice))
	assert.Equal(t, 15, p.StockQuantity)
}

func TestUpdateProduct_ValidaAntesDeModificar(t *testing.T) {
	m := seeded(t)
	name := "Nombre nuevo"
	badPrice := price("0")

	_, err := m.UpdateProduct(1, inventory.ProductPatch{Name: &name, Price: &badPrice})
	assert.ErrorIs(t, err, domain.ErrValidation)

	p, _ := m.FindProductByID(1)
	assert.Equal(t, "Laptop", p.Name, "un patch inválido no modifica ningún campo")

	_, err = m.UpdateProduct(99, inventory.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAllProducts_EsCopia(t *testing.T) {
	m := seeded(t)

	list := m.GetAllProducts()
	require.Len(t, list, 5)
	list[0].StockQuantity = 0
	list[0].Name = "mutado"

	p, _ := m.FindProductByID(1)
	assert.Equal(t, 15, p.StockQuantity)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(m.GetAllProducts()))
}

func TestGetLowStockProducts(t *testing.T) {
	m := seeded(t)

	low := m.GetLowStockProducts(inventory.DefaultLowStockThreshold)
	assert.Equal(t, []int{3}, ids(low))

	low = m.GetLowStockProducts(20)
	assert.Equal(t, []int{3, 4, 1}, ids(low), "ordenados por stock ascendente")

	require.NoError(t, m.UpdateStock(4, -5))
	low = m.GetLowStockProducts(5)
	assert.Equal(t, []int{3, 4}, ids(low), "empates conservan el orden por ID")

	assert.Empty(t, m.GetLowStockProducts(0))
}

func TestSearchProductsByName(t *testing.T) {
	m := seeded(t)

	found := m.SearchProductsByName("mouse")
	require.Len(t, found, 1)
	assert.Equal(t, "Wireless Mouse", found[0].Name)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(m.SearchProductsByName("")))
	assert.Equal(t, []int{3}, ids(m.SearchProductsByName("USB-c")))
	assert.Empty(t, m.SearchProductsByName("tablet"))
}

func TestSearchProductsByName_Unicode(t *testing.T) {
	m := inventory.NewManager(nil)
	_, err := m.AddProduct("Cámara ÑANDÚ", price("10"), 1)
	require.NoError(t, err)

	assert.Len(t, m.SearchProductsByName("ñandú"), 1)
	assert.Len(t, m.SearchProductsByName("CÁMARA"), 1)
}

func TestFindProductsInPriceRange(t *testing.T) {
	m := seeded(t)

	assert.Equal(t, []int{2, 3, 5}, ids(m.FindProductsInPriceRange(price("19.99"), price("89.99"))))
	assert.Empty(t, m.FindProductsInPriceRange(price("500"), price("100")))
}

func TestCalculateTotalInventoryValue(t *testing.T) {
	assert.True(t, inventory.NewManager(nil).CalculateTotalInventoryValue().IsZero())

	m := seeded(t)
	expected := decimal.Zero
	for _, p := range m.GetAllProducts() {
		expected = expected.Add(p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity))))
	}
	got := m.CalculateTotalInventoryValue()
	assert.True(t, got.Equal(expected))
	assert.True(t, got.Equal(price("20569.07")), "obtenido %s", got)
}

func TestAveragePrice(t *testing.T) {
	assert.True(t, inventory.NewManager(nil).AveragePrice().IsZero())
	assert.True(t, seeded(t).AveragePrice().Equal(price("277.99")))
}

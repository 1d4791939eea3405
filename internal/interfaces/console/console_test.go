package console_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/Inventario-tracker/internal/infrastructure/xmlreport"
	"github.com/jhoicas/Inventario-tracker/internal/interfaces/console"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// runSession ejecuta la consola con las líneas dadas y devuelve la salida y el catálogo.
func runSession(t *testing.T, seed bool, lines ...string) (string, *inventory.Manager) {
	t.Helper()
	m := inventory.NewManager(nil)
	if seed {
		require.NoError(t, inventory.Seed(m))
	}
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := console.New(m, nil, in, &out, console.Options{}, nil)
	require.NoError(t, c.Run(context.Background()))
	return out.String(), m
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestConsole_AgregarProducto(t *testing.T) {
	out, m := runSession(t, false,
		"1", "Widget", "abc", "-2", "9.99", "x", "-1", "10",
		"0",
	)

	assert.Contains(t, out, "Precio inválido")
	assert.Contains(t, out, "Ingrese un número entero")
	assert.Contains(t, out, "La cantidad no puede ser negativa")
	assert.Contains(t, out, "✓ Producto agregado.\nID: 1 | Widget | Price: $9.99 | Stock: 10")
	assert.Contains(t, out, "¡Gracias por usar el sistema de inventario!")

	p, err := m.FindProductByID(1)
	require.NoError(t, err)
	assert.Equal(t, 10, p.StockQuantity)
}

func TestConsole_AgregarProductoInvalido(t *testing.T) {
	out, m := runSession(t, false, "1", "   ", "5", "1", "0")

	assert.Contains(t, out, "✗ Error: No se pudo agregar el producto")
	assert.Equal(t, 0, m.Count())
}

func TestConsole_ActualizarStock(t *testing.T) {
	out, m := runSession(t, true,
		"2", "3", "-100",
		"2", "3", "+7",
		"2", "99",
		"2", "1", "0",
		"q",
	)

	assert.Contains(t, out, "Stock insuficiente: no se pueden retirar 100 unidades (disponible 3)")
	assert.Contains(t, out, "Stock actualizado. Nuevo stock: 10")
	assert.Contains(t, out, "No existe un producto con ID 99")
	assert.Contains(t, out, "La variación debe ser distinta de cero")

	p, _ := m.FindProductByID(3)
	assert.Equal(t, 10, p.StockQuantity)
}

func TestConsole_ActualizarStockSobreElMaximo(t *testing.T) {
	out, m := runSession(t, true, "2", "1", "9223372036854775807", "q")

	assert.Contains(t, out, "El stock no puede superar 9999 unidades (actual 15)")
	assert.NotContains(t, out, "Stock actualizado")

	p, _ := m.FindProductByID(1)
	assert.Equal(t, 15, p.StockQuantity)
}

func TestConsole_ListadosYBusqueda(t *testing.T) {
	out, _ := runSession(t, true, "3", "4", "6", "mouse", "6", "tablet", "0")

	assert.Contains(t, out, "│   1 │ Laptop               │ $  999.99 │     15 │")
	assert.Contains(t, out, "Total de productos: 5")
	assert.Contains(t, out, "Valor total del inventario: $20569.07")
	assert.Contains(t, out, "1 producto(s) necesitan reposición.")
	assert.Contains(t, out, "│   2 │ Wireless Mouse       │ $   29.99 │     42 │")
	assert.Contains(t, out, "1 resultado(s).")
	assert.Contains(t, out, `Sin resultados para "tablet".`)
}

func TestConsole_EliminarConConfirmacion(t *testing.T) {
	out, m := runSession(t, true,
		"5", "2", "no",
		"5", "2", "si",
		"0",
	)

	assert.Contains(t, out, "Eliminación cancelada.")
	assert.Contains(t, out, "✓ Producto 'Wireless Mouse' eliminado.")
	assert.Equal(t, 4, m.Count())
	_, err := m.FindProductByID(2)
	assert.Error(t, err)
}

func TestConsole_EditarProducto(t *testing.T) {
	out, m := runSession(t, true,
		"7", "1", "", "1099.50",
		"7", "2", "Mouse Inalámbrico", "",
		"7", "3", "", "0", "200000",
		"0",
	)

	assert.Contains(t, out, "Producto actualizado.\nID: 1 | Laptop | Price: $1099.50 | Stock: 15")
	assert.Contains(t, out, "No se pudo editar el producto")

	p, _ := m.FindProductByID(2)
	assert.Equal(t, "Mouse Inalámbrico", p.Name)
	cable, _ := m.FindProductByID(3)
	assert.Equal(t, "19.99", cable.Price.StringFixed(2), "un precio fuera de rango no se aplica")
}

func TestConsole_OpcionInvalidaYFinDeEntrada(t *testing.T) {
	// Sin "0": la sesión termina limpiamente al agotarse la entrada.
	out, _ := runSession(t, false, "9", "8")
	assert.Equal(t, 2, strings.Count(out, "Opción inválida."), "sin reportes la opción 8 no está disponible")
	assert.NotContains(t, out, "8. Exportar reporte")
}

func TestConsole_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := console.New(inventory.NewManager(nil), nil, strings.NewReader(""), &bytes.Buffer{}, console.Options{}, nil)
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestConsole_ExportarReporte(t *testing.T) {
	dir := t.TempDir()
	m := inventory.NewManager(nil)
	require.NoError(t, inventory.Seed(m))
	reports := inventory.NewReportUseCase(m, "Inventario", 5, xmlreport.NewEtreeReportWriter())

	var out bytes.Buffer
	in := strings.NewReader("8\ncsv\n8\nxml\n0\n")
	c := console.New(m, reports, in, &out, console.Options{ReportDir: dir}, nil)
	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), `Formato no soportado: "csv".`)
	assert.Contains(t, out.String(), "Reporte guardado en")

	files, err := filepath.Glob(filepath.Join(dir, "inventario_*.xml"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), `<Product id="5" name="Keyboard"`)
}

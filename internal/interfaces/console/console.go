// Package console implementa el menú de texto interactivo sobre inventory.Manager.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/Inventario-tracker/internal/domain"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/Inventario-tracker/pkg/logger"
)

// errInputClosed la entrada terminó (EOF); la sesión finaliza sin error.
var errInputClosed = errors.New("entrada cerrada")

// Options configuración de la sesión.
type Options struct {
	LowStockThreshold int
	ReportDir         string // carpeta donde se exportan los reportes
}

// Console sesión interactiva de un único operador. Procesa un comando a la vez.
type Console struct {
	manager *inventory.Manager
	reports *inventory.ReportUseCase
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	log     *logger.Logger
}

// New construye la sesión. reports puede ser nil (la opción de exportar queda deshabilitada).
func New(manager *inventory.Manager, reports *inventory.ReportUseCase, in io.Reader, out io.Writer, opts Options, log *logger.Logger) *Console {
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = inventory.DefaultLowStockThreshold
	}
	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Console{
		manager: manager,
		reports: reports,
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		log:     log,
	}
}

// Run ejecuta el ciclo menú → comando hasta que el operador sale, la entrada termina o ctx se cancela.
func (c *Console) Run(ctx context.Context) error {
	c.println("===================================")
	c.println("   SISTEMA DE INVENTARIO")
	c.println("===================================")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()
		choice, err := c.prompt("Seleccione una opción: ")
		if err != nil {
			return c.finish(err)
		}
		exit, err := c.dispatch(ctx, strings.ToLower(choice))
		if err != nil {
			return c.finish(err)
		}
		if exit {
			c.println("\n¡Gracias por usar el sistema de inventario!")
			return nil
		}
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		c.log.Debug().Msg("entrada cerrada, fin de la sesión")
		return nil
	}
	return err
}

func (c *Console) printMenu() {
	c.println("\n--- MENÚ PRINCIPAL ---")
	c.println("1. Agregar producto")
	c.println("2. Actualizar stock")
	c.println("3. Ver todos los productos")
	c.println("4. Ver productos con stock bajo")
	c.println("5. Eliminar producto")
	c.println("6. Buscar por nombre")
	c.println("7. Editar producto")
	if c.reports != nil {
		c.println("8. Exportar reporte")
	}
	c.println("0. Salir")
	c.println(strings.Repeat("-", 30))
}

func (c *Console) dispatch(ctx context.Context, choice string) (bool, error) {
	switch choice {
	case "1":
		return false, c.addProduct()
	case "2":
		return false, c.updateStock()
	case "3":
		c.listAll()
	case "4":
		c.lowStock()
	case "5":
		return false, c.removeProduct()
	case "6":
		return false, c.search()
	case "7":
		return false, c.editProduct()
	case "8":
		if c.reports == nil {
			c.errorf("Opción inválida.")
			return false, nil
		}
		return false, c.exportReport(ctx)
	case "0", "q", "salir":
		return true, nil
	default:
		c.errorf("Opción inválida.")
	}
	return false, nil
}

// ── Pantallas ─────────────────────────────────────────────────────────────────

func (c *Console) addProduct() error {
	c.println("\n--- AGREGAR PRODUCTO ---")
	name, err := c.prompt("Nombre: ")
	if err != nil {
		return err
	}
	price, err := c.promptPrice("Precio ($): ", false)
	if err != nil {
		return err
	}
	qty, err := c.promptNonNegative("Stock inicial: ")
	if err != nil {
		return err
	}
	p, err := c.manager.AddProduct(name, *price, qty)
	if err != nil {
		c.errorf("No se pudo agregar el producto: %v", err)
		return nil
	}
	c.log.Info().Int("product_id", p.ID).Msg("producto agregado desde consola")
	c.successf("Producto agregado.\n%s", p)
	return nil
}

func (c *Console) updateStock() error {
	c.println("\n--- ACTUALIZAR STOCK ---")
	c.printTable(c.manager.GetAllProducts())
	p, err := c.promptExisting("\nID del producto: ")
	if err != nil || p == nil {
		return err
	}
	c.printf("\nProducto: %s\nStock actual: %d\n", p.Name, p.StockQuantity)
	delta, err := c.promptInt("Variación (+ reposición, - venta): ")
	if err != nil {
		return err
	}
	if err := c.manager.UpdateStock(p.ID, delta); err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			c.errorf("Stock insuficiente: no se pueden retirar %d unidades (disponible %d).", -delta, p.StockQuantity)
		case errors.Is(err, domain.ErrInvalidArgument) && delta == 0:
			c.errorf("La variación debe ser distinta de cero.")
		case errors.Is(err, domain.ErrInvalidArgument):
			c.errorf("El stock no puede superar %d unidades (actual %d).", inventory.MaxQuantity, p.StockQuantity)
		default:
			c.errorf("No se pudo actualizar el stock: %v", err)
		}
		return nil
	}
	c.successf("Stock actualizado. Nuevo stock: %d", p.StockQuantity+delta)
	return nil
}

func (c *Console) listAll() {
	c.println("\n--- TODOS LOS PRODUCTOS ---")
	products := c.manager.GetAllProducts()
	if len(products) == 0 {
		c.println("No hay productos en el inventario.")
		return
	}
	c.printTable(products)
	c.printf("\nTotal de productos: %d\n", len(products))
	c.printf("Valor total del inventario: %s\n", entity.FormatCurrency(c.manager.CalculateTotalInventoryValue()))
}

func (c *Console) lowStock() {
	c.printf("\n--- STOCK BAJO (menos de %d unidades) ---\n", c.opts.LowStockThreshold)
	low := c.manager.GetLowStockProducts(c.opts.LowStockThreshold)
	if len(low) == 0 {
		c.println("No hay productos con stock bajo.")
	} else {
		c.printTable(low)
		c.printf("\n%d producto(s) necesitan reposición.\n", len(low))
	}
	c.printf("\nValor total del inventario: %s\n", entity.FormatCurrency(c.manager.CalculateTotalInventoryValue()))
}

func (c *Console) removeProduct() error {
	c.println("\n--- ELIMINAR PRODUCTO ---")
	c.printTable(c.manager.GetAllProducts())
	p, err := c.promptExisting("\nID del producto a eliminar: ")
	if err != nil || p == nil {
		return err
	}
	c.printf("\nProducto a eliminar: %s\n", p)
	answer, err := c.prompt("¿Confirma? (si/no): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(answer) {
	case "si", "sí", "s", "yes", "y":
	default:
		c.println("Eliminación cancelada.")
		return nil
	}
	if err := c.manager.RemoveProduct(p.ID); err != nil {
		c.errorf("No se pudo eliminar el producto: %v", err)
		return nil
	}
	c.log.Info().Int("product_id", p.ID).Msg("producto eliminado desde consola")
	c.successf("Producto '%s' eliminado.", p.Name)
	return nil
}

func (c *Console) search() error {
	c.println("\n--- BUSCAR POR NOMBRE ---")
	term, err := c.prompt("Texto a buscar: ")
	if err != nil {
		return err
	}
	found := c.manager.SearchProductsByName(term)
	if len(found) == 0 {
		c.printf("Sin resultados para %q.\n", term)
		return nil
	}
	c.printTable(found)
	c.printf("\n%d resultado(s).\n", len(found))
	return nil
}

func (c *Console) editProduct() error {
	c.println("\n--- EDITAR PRODUCTO ---")
	c.printTable(c.manager.GetAllProducts())
	p, err := c.promptExisting("\nID del producto: ")
	if err != nil || p == nil {
		return err
	}
	var patch inventory.ProductPatch
	name, err := c.prompt(fmt.Sprintf("Nuevo nombre [%s]: ", p.Name))
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}
	price, err := c.promptPrice(fmt.Sprintf("Nuevo precio [%s]: ", p.Price.StringFixed(2)), true)
	if err != nil {
		return err
	}
	patch.Price = price

	updated, err := c.manager.UpdateProduct(p.ID, patch)
	if err != nil {
		c.errorf("No se pudo editar el producto: %v", err)
		return nil
	}
	c.successf("Producto actualizado.\n%s", updated)
	return nil
}

func (c *Console) exportReport(ctx context.Context) error {
	c.println("\n--- EXPORTAR REPORTE ---")
	formats := c.reports.Formats()
	format, err := c.prompt(fmt.Sprintf("Formato (%s): ", strings.Join(formats, "/")))
	if err != nil {
		return err
	}
	out, _, filename, err := c.reports.Render(ctx, c.reports.Snapshot(), format)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			c.errorf("Formato no soportado: %q.", format)
			return nil
		}
		c.errorf("No se pudo generar el reporte: %v", err)
		return nil
	}
	path := filepath.Join(c.opts.ReportDir, filename)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		c.errorf("No se pudo guardar el reporte: %v", err)
		return nil
	}
	c.log.Info().Str("path", path).Int("bytes", len(out)).Msg("reporte exportado")
	c.successf("Reporte guardado en %s", path)
	return nil
}

// ── Entrada ───────────────────────────────────────────────────────────────────

func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("leer entrada: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptInt(label string) (int, error) {
	for {
		s, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		c.errorf("Ingrese un número entero.")
	}
}

func (c *Console) promptNonNegative(label string) (int, error) {
	for {
		n, err := c.promptInt(label)
		if err != nil {
			return 0, err
		}
		if n >= 0 {
			return n, nil
		}
		c.errorf("La cantidad no puede ser negativa.")
	}
}

// promptPrice pide un precio positivo. Con optional, una línea vacía devuelve nil.
func (c *Console) promptPrice(label string, optional bool) (*decimal.Decimal, error) {
	for {
		s, err := c.prompt(label)
		if err != nil {
			return nil, err
		}
		if s == "" && optional {
			return nil, nil
		}
		d, err := decimal.NewFromString(strings.TrimPrefix(s, "$"))
		if err == nil && d.IsPositive() {
			return &d, nil
		}
		c.errorf("Precio inválido. Ingrese un número positivo.")
	}
}

// promptExisting pide un ID y devuelve el producto; nil (sin error) si no existe.
func (c *Console) promptExisting(label string) (*entity.Product, error) {
	id, err := c.promptInt(label)
	if err != nil {
		return nil, err
	}
	p, err := c.manager.FindProductByID(id)
	if err != nil {
		c.errorf("No existe un producto con ID %d.", id)
		return nil, nil
	}
	return &p, nil
}

// ── Salida ────────────────────────────────────────────────────────────────────

func (c *Console) printTable(products []entity.Product) {
	if len(products) == 0 {
		c.println("No hay productos en el inventario.")
		return
	}
	c.println(entity.TableHeader)
	for _, p := range products {
		c.println(p.TableRow())
	}
	c.println(entity.TableFooter)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) successf(format string, args ...interface{}) {
	c.printf("\n✓ "+format+"\n", args...)
}

func (c *Console) errorf(format string, args ...interface{}) {
	c.printf("\n✗ Error: "+format+"\n", args...)
}

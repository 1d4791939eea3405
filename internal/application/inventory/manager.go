package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Inventario-tracker/internal/domain"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/Inventario-tracker/internal/domain/inventory"
	"github.com/jhoicas/Inventario-tracker/pkg/logger"
)

// DefaultLowStockThreshold umbral de stock bajo cuando el llamador no configura otro.
const DefaultLowStockThreshold = 5

// Manager es la raíz del agregado del catálogo: único dueño de los productos y del contador de IDs.
// Los IDs empiezan en 1 y nunca se reutilizan, ni siquiera tras eliminar.
//
// Manager no es seguro para uso concurrente; quien lo comparta entre goroutines debe
// protegerlo con un mutex externo. Todas las lecturas devuelven copias.
type Manager struct {
	products []*entity.Product
	nextID   int
	log      *logger.Logger
}

// NewManager construye un catálogo vacío. log puede ser nil.
func NewManager(log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{nextID: 1, log: log}
}

// ProductPatch cambios opcionales de nombre y precio (nil = sin cambio).
type ProductPatch struct {
	Name  *string
	Price *decimal.Decimal
}

// AddProduct valida y agrega un producto con el siguiente ID.
// Si la validación falla devuelve domain.ErrValidation y el contador no avanza.
func (m *Manager) AddProduct(name string, price decimal.Decimal, quantity int) (entity.Product, error) {
	name, err := normalizeName(name)
	if err != nil {
		return entity.Product{}, err
	}
	if err := validatePrice(price); err != nil {
		return entity.Product{}, err
	}
	if err := validateQuantity(quantity); err != nil {
		return entity.Product{}, err
	}

	p := entity.NewProduct(m.nextID, name, price, quantity)
	m.products = append(m.products, p)
	m.nextID++

	m.log.Debug().Int("product_id", p.ID).Str("name", p.Name).Msg("producto agregado")
	return *p, nil
}

// UpdateStock aplica delta al stock: positivo repone, negativo descuenta |delta|.
// delta == 0 es domain.ErrInvalidArgument. El cambio se aplica completo o no se aplica.
func (m *Manager) UpdateStock(productID, delta int) error {
	p := m.find(productID)
	if p == nil {
		return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	var err error
	switch {
	case delta == 0:
		err = fmt.Errorf("variación de stock nula: %w", domain.ErrInvalidArgument)
	case delta > 0:
		err = p.IncreaseStock(delta)
	default:
		err = p.DecreaseStock(-delta)
	}
	if err != nil {
		return fmt.Errorf("producto %d: %w", productID, err)
	}
	m.log.Debug().Int("product_id", productID).Int("delta", delta).Int("stock", p.StockQuantity).Msg("stock actualizado")
	return nil
}

// UpdateProduct edita nombre y/o precio con las mismas reglas que AddProduct.
// Ambos campos se validan antes de modificar nada.
func (m *Manager) UpdateProduct(productID int, patch ProductPatch) (entity.Product, error) {
	p := m.find(productID)
	if p == nil {
		return entity.Product{}, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	name := p.Name
	if patch.Name != nil {
		n, err := normalizeName(*patch.Name)
		if err != nil {
			return entity.Product{}, err
		}
		name = n
	}
	price := p.Price
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return entity.Product{}, err
		}
		price = *patch.Price
	}
	p.Name = name
	p.Price = price

	m.log.Debug().Int("product_id", productID).Msg("producto actualizado")
	return *p, nil
}

// RemoveProduct elimina el producto. Su ID no se vuelve a asignar.
func (m *Manager) RemoveProduct(productID int) error {
	for i, p := range m.products {
		if p.ID == productID {
			m.products = append(m.products[:i], m.products[i+1:]...)
			m.log.Debug().Int("product_id", productID).Msg("producto eliminado")
			return nil
		}
	}
	return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
}

// FindProductByID devuelve una copia del producto o domain.ErrNotFound.
func (m *Manager) FindProductByID(productID int) (entity.Product, error) {
	p := m.find(productID)
	if p == nil {
		return entity.Product{}, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	return *p, nil
}

// GetAllProducts copia del catálogo ordenada por ID.
func (m *Manager) GetAllProducts() []entity.Product {
	return m.filter(func(entity.Product) bool { return true })
}

// Count número de productos vigentes.
func (m *Manager) Count() int {
	return len(m.products)
}

// GetLowStockProducts productos con stock < threshold, ordenados por stock ascendente
// (empates en orden de ID).
func (m *Manager) GetLowStockProducts(threshold int) []entity.Product {
	list := m.filter(func(p entity.Product) bool { return p.StockQuantity < threshold })
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StockQuantity < list[j].StockQuantity
	})
	return list
}

// SearchProductsByName coincidencia parcial sin distinguir mayúsculas, ordenada por ID.
// Un término vacío devuelve todo el catálogo.
func (m *Manager) SearchProductsByName(term string) []entity.Product {
	folder := cases.Fold()
	needle := folder.String(term)
	return m.filter(func(p entity.Product) bool {
		return strings.Contains(folder.String(p.Name), needle)
	})
}

// FindProductsInPriceRange productos con minPrice <= precio <= maxPrice, ordenados por ID.
func (m *Manager) FindProductsInPriceRange(minPrice, maxPrice decimal.Decimal) []entity.Product {
	return m.filter(func(p entity.Product) bool {
		return p.Price.GreaterThanOrEqual(minPrice) && p.Price.LessThanOrEqual(maxPrice)
	})
}

// CalculateTotalInventoryValue Σ precio * stock; cero con el catálogo vacío.
func (m *Manager) CalculateTotalInventoryValue() decimal.Decimal {
	return inventory.TotalValue(m.GetAllProducts())
}

// AveragePrice precio unitario promedio; cero con el catálogo vacío.
func (m *Manager) AveragePrice() decimal.Decimal {
	return inventory.AveragePrice(m.GetAllProducts())
}

func (m *Manager) find(productID int) *entity.Product {
	for _, p := range m.products {
		if p.ID == productID {
			return p
		}
	}
	return nil
}

// filter copia los productos que cumplen keep, ordenados por ID.
func (m *Manager) filter(keep func(entity.Product) bool) []entity.Product {
	out := make([]entity.Product, 0, len(m.products))
	for _, p := range m.products {
		if keep(*p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

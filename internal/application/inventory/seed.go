package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var sampleProducts = []struct {
	name     string
	price    string
	quantity int
}{
	{"Laptop", "999.99", 15},
	{"Wireless Mouse", "29.99", 42},
	{"USB-C Cable", "19.99", 3},
	{"Monitor", "249.99", 8},
	{"Keyboard", "89.99", 25},
}

// Seed carga los productos de ejemplo en el catálogo.
func Seed(m *Manager) error {
	for _, s := range sampleProducts {
		if _, err := m.AddProduct(s.name, decimal.RequireFromString(s.price), s.quantity); err != nil {
			return fmt.Errorf("seed %q: %w", s.name, err)
		}
	}
	return nil
}

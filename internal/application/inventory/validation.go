package inventory

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/Inventario-tracker/internal/domain"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Límites de los datos de producto.
const (
	MaxNameLength = 100
	MaxQuantity   = entity.MaxStockQuantity
)

// MaxPrice precio unitario máximo admitido.
var MaxPrice = decimal.RequireFromString("99999.99")

// normalizeName recorta espacios y valida longitud (1..MaxNameLength runas).
func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: el nombre es requerido", domain.ErrValidation)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return "", fmt.Errorf("%w: el nombre excede %d caracteres", domain.ErrValidation, MaxNameLength)
	}
	return trimmed, nil
}

// validatePrice exige 0 < price <= MaxPrice.
func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() || price.GreaterThan(MaxPrice) {
		return fmt.Errorf("%w: el precio debe estar entre 0 (excluido) y %s", domain.ErrValidation, MaxPrice.StringFixed(2))
	}
	return nil
}

// validateQuantity exige 0 <= quantity <= MaxQuantity.
func validateQuantity(quantity int) error {
	if quantity < 0 || quantity > MaxQuantity {
		return fmt.Errorf("%w: la cantidad debe estar entre 0 y %d", domain.ErrValidation, MaxQuantity)
	}
	return nil
}

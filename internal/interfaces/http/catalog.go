package http

import (
	"sync"

	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
)

// catalog serializa el acceso al Manager: fiber atiende cada petición en su propia goroutine
// y el Manager no tiene sincronización interna.
type catalog struct {
	mu      sync.Mutex
	manager *inventory.Manager
}

// do ejecuta fn con el lock tomado.
func (c *catalog) do(fn func(m *inventory.Manager) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.manager)
}

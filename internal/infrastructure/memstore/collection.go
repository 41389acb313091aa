package memstore

import (
	"sync"

	"github.com/tu-usuario/cobranzas-pro/internal/domain"
)

// collection es un conjunto de registros de una entidad, indexado por id y
// con orden de inserción estable para los listados. Todas las operaciones
// toman el lock de la colección; las lecturas devuelven clones para que
// ningún llamador comparta estado mutable con el store.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
	clone func(*T) *T
}

func newCollection[T any](clone func(*T) *T) *collection[T] {
	return &collection[T]{
		items: make(map[string]*T),
		clone: clone,
	}
}

// list devuelve clones de todos los registros en orden de inserción.
func (c *collection[T]) list() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clone(c.items[id]))
	}
	return out
}

// filter devuelve clones de los registros que cumplen el predicado, en orden de inserción.
func (c *collection[T]) filter(pred func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*T
	for _, id := range c.order {
		if pred(c.items[id]) {
			out = append(out, c.clone(c.items[id]))
		}
	}
	return out
}

// get devuelve un clon del registro o domain.ErrNotFound.
func (c *collection[T]) get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.clone(rec), nil
}

// insert registra un nuevo id. El id lo asigna siempre el store, nunca el llamador.
func (c *collection[T]) insert(id string, rec *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = rec
	c.order = append(c.order, id)
}

// update ejecuta el mutador sobre una copia de trabajo bajo el lock
// (read-modify-write atómico) y la publica solo si el mutador no falla.
// Devuelve un clon del registro resultante.
func (c *collection[T]) update(id string, mutate func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	work := c.clone(rec)
	if err := mutate(work); err != nil {
		return nil, err
	}
	c.items[id] = work
	return c.clone(work), nil
}

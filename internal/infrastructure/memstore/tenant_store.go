package memstore

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// TenantStore implementa repository.TenantRepository sobre el store en memoria.
type TenantStore struct {
	s *Store
}

// List devuelve todos los arrendatarios en orden de inserción.
func (r *TenantStore) List() ([]*entity.Tenant, error) {
	return r.s.tenants.list(), nil
}

// GetByID devuelve el arrendatario o domain.ErrNotFound.
func (r *TenantStore) GetByID(id string) (*entity.Tenant, error) {
	return r.s.tenants.get(id)
}

// Create registra un arrendatario nuevo. El store asigna id y CreatedAt;
// los valores que traiga el llamador en esos campos se descartan.
func (r *TenantStore) Create(t *entity.Tenant) (*entity.Tenant, error) {
	rec := t.Clone()
	rec.ID = uuid.New().String()
	rec.CreatedAt = r.s.now()
	r.s.tenants.insert(rec.ID, rec)
	return rec.Clone(), nil
}

// Update aplica el mutador bajo el lock del registro.
func (r *TenantStore) Update(id string, mutate func(*entity.Tenant) error) (*entity.Tenant, error) {
	return r.s.tenants.update(id, mutate)
}

package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant.
//
// Update recibe un mutador que el store ejecuta bajo el lock del registro
// (read-modify-write atómico); si el mutador devuelve error no se aplica
// ningún cambio. Devuelve domain.ErrNotFound si el id no existe.
type TenantRepository interface {
	List() ([]*entity.Tenant, error)
	GetByID(id string) (*entity.Tenant, error)
	Create(t *entity.Tenant) (*entity.Tenant, error)
	Update(id string, mutate func(*entity.Tenant) error) (*entity.Tenant, error)
}

package memstore

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// PaymentPlanStore implementa repository.PaymentPlanRepository sobre el store en memoria.
type PaymentPlanStore struct {
	s *Store
}

// List devuelve todos los planes en orden de inserción.
func (r *PaymentPlanStore) List() ([]*entity.PaymentPlan, error) {
	return r.s.plans.list(), nil
}

// GetByID devuelve el plan o domain.ErrNotFound.
func (r *PaymentPlanStore) GetByID(id string) (*entity.PaymentPlan, error) {
	return r.s.plans.get(id)
}

// ListByTenant devuelve los planes del arrendatario indicado.
func (r *PaymentPlanStore) ListByTenant(tenantID string) ([]*entity.PaymentPlan, error) {
	return r.s.plans.filter(func(p *entity.PaymentPlan) bool {
		return p.TenantID == tenantID
	}), nil
}

// Create registra un plan nuevo. El store asigna id y CreatedAt.
func (r *PaymentPlanStore) Create(p *entity.PaymentPlan) (*entity.PaymentPlan, error) {
	rec := p.Clone()
	rec.ID = uuid.New().String()
	rec.CreatedAt = r.s.now()
	r.s.plans.insert(rec.ID, rec)
	return rec.Clone(), nil
}

// Update aplica el mutador bajo el lock del registro.
func (r *PaymentPlanStore) Update(id string, mutate func(*entity.PaymentPlan) error) (*entity.PaymentPlan, error) {
	return r.s.plans.update(id, mutate)
}

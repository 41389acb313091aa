package memstore

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// EscalationStore implementa repository.EscalationRepository sobre el store en memoria.
type EscalationStore struct {
	s *Store
}

// List devuelve todos los escalamientos en orden de inserción.
func (r *EscalationStore) List() ([]*entity.Escalation, error) {
	return r.s.escalations.list(), nil
}

// GetByID devuelve el escalamiento o domain.ErrNotFound.
func (r *EscalationStore) GetByID(id string) (*entity.Escalation, error) {
	return r.s.escalations.get(id)
}

// Create registra un escalamiento nuevo. El store asigna id y CreatedAt;
// ResolvedAt nunca se acepta del llamador en la creación.
func (r *EscalationStore) Create(e *entity.Escalation) (*entity.Escalation, error) {
	rec := e.Clone()
	rec.ID = uuid.New().String()
	rec.CreatedAt = r.s.now()
	rec.ResolvedAt = nil
	r.s.escalations.insert(rec.ID, rec)
	return rec.Clone(), nil
}

// Update aplica el mutador bajo el lock del registro.
func (r *EscalationStore) Update(id string, mutate func(*entity.Escalation) error) (*entity.Escalation, error) {
	return r.s.escalations.update(id, mutate)
}

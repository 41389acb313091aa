package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// EscalationRepository define el puerto de persistencia para Escalation.
type EscalationRepository interface {
	List() ([]*entity.Escalation, error)
	GetByID(id string) (*entity.Escalation, error)
	Create(e *entity.Escalation) (*entity.Escalation, error)
	Update(id string, mutate func(*entity.Escalation) error) (*entity.Escalation, error)
}

package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// PaymentPlanRepository define el puerto de persistencia para PaymentPlan.
type PaymentPlanRepository interface {
	List() ([]*entity.PaymentPlan, error)
	GetByID(id string) (*entity.PaymentPlan, error)
	ListByTenant(tenantID string) ([]*entity.PaymentPlan, error)
	Create(p *entity.PaymentPlan) (*entity.PaymentPlan, error)
	Update(id string, mutate func(*entity.PaymentPlan) error) (*entity.PaymentPlan, error)
}

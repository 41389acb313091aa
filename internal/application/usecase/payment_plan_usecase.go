package usecase

import (
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/triage"
	"github.com/tu-usuario/cobranzas-pro/pkg/logger"
)

// PaymentPlanUseCase consultas y decisiones sobre planes de pago.
//
// El motor solo decide proposed -> approved | denied. Los dos estados de
// decisión son terminales: repetir la misma decisión es un no-op; cambiarla
// o salir de un terminal por PATCH es un conflicto.
type PaymentPlanUseCase struct {
	repo    repository.PaymentPlanRepository
	tenants repository.TenantRepository
	log     *logger.Logger
}

// NewPaymentPlanUseCase construye el caso de uso. El repositorio de Tenant
// se usa para calcular el riesgo del plan (cobertura + confiabilidad).
func NewPaymentPlanUseCase(repo repository.PaymentPlanRepository, tenants repository.TenantRepository, log *logger.Logger) *PaymentPlanUseCase {
	return &PaymentPlanUseCase{repo: repo, tenants: tenants, log: log}
}

// List devuelve todos los planes con su clasificación de riesgo.
func (uc *PaymentPlanUseCase) List() ([]dto.PaymentPlanResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list)
}

// ListByTenant devuelve los planes de un arrendatario.
func (uc *PaymentPlanUseCase) ListByTenant(tenantID string) ([]dto.PaymentPlanResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(list)
}

// GetByID obtiene un plan por ID.
func (uc *PaymentPlanUseCase) GetByID(id string) (*dto.PaymentPlanResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// Create registra un plan propuesto.
func (uc *PaymentPlanUseCase) Create(in dto.CreatePaymentPlanRequest) (*dto.PaymentPlanResponse, error) {
	if in.TenantID == "" || !in.WeeklyAmount.IsPositive() || in.Duration <= 0 || in.Coverage < 0 {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.repo.Create(&entity.PaymentPlan{
		TenantID:         in.TenantID,
		ConversationID:   in.ConversationID,
		WeeklyAmount:     in.WeeklyAmount,
		Duration:         in.Duration,
		TotalAmount:      in.TotalAmount,
		StartDate:        in.StartDate,
		IncludesLateFees: in.IncludesLateFees,
		Status:           entity.PlanStatusProposed,
		Coverage:         in.Coverage,
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(created), nil
}

// Update aplica una actualización parcial. Un cambio de Status pasa por la
// misma regla de transición que Approve/Deny.
func (uc *PaymentPlanUseCase) Update(id string, in dto.UpdatePaymentPlanRequest) (*dto.PaymentPlanResponse, error) {
	updated, err := uc.repo.Update(id, func(p *entity.PaymentPlan) error {
		if in.WeeklyAmount != nil {
			if !in.WeeklyAmount.IsPositive() {
				return domain.ErrInvalidInput
			}
			p.WeeklyAmount = *in.WeeklyAmount
		}
		if in.Duration != nil {
			if *in.Duration <= 0 {
				return domain.ErrInvalidInput
			}
			p.Duration = *in.Duration
		}
		if in.TotalAmount != nil {
			p.TotalAmount = *in.TotalAmount
		}
		if in.StartDate != nil {
			p.StartDate = *in.StartDate
		}
		if in.IncludesLateFees != nil {
			p.IncludesLateFees = *in.IncludesLateFees
		}
		if in.Coverage != nil {
			if *in.Coverage < 0 {
				return domain.ErrInvalidInput
			}
			p.Coverage = *in.Coverage
		}
		if in.Status != nil {
			if !entity.ValidPlanStatus(*in.Status) {
				return domain.ErrInvalidInput
			}
			return transitionPlan(p, *in.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(updated), nil
}

// Approve marca el plan como aprobado (solo desde proposed; repetir es no-op).
func (uc *PaymentPlanUseCase) Approve(id string) (*dto.PaymentPlanResponse, error) {
	return uc.decide(id, entity.PlanStatusApproved)
}

// Deny marca el plan como denegado (solo desde proposed; repetir es no-op).
func (uc *PaymentPlanUseCase) Deny(id string) (*dto.PaymentPlanResponse, error) {
	return uc.decide(id, entity.PlanStatusDenied)
}

func (uc *PaymentPlanUseCase) decide(id, status string) (*dto.PaymentPlanResponse, error) {
	updated, err := uc.repo.Update(id, func(p *entity.PaymentPlan) error {
		return transitionPlan(p, status)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("plan_id", id).Str("status", status).Msg("decisión de plan de pagos")
	return uc.toResponse(updated), nil
}

// transitionPlan aplica la máquina de estados del plan: el mismo estado es
// un no-op; cualquier otra salida exige estar en proposed y terminar en
// approved o denied.
func transitionPlan(p *entity.PaymentPlan, status string) error {
	if status == p.Status {
		return nil
	}
	if p.Status != entity.PlanStatusProposed {
		return domain.ErrConflict
	}
	if status != entity.PlanStatusApproved && status != entity.PlanStatusDenied {
		return domain.ErrConflict
	}
	p.Status = status
	return nil
}

func (uc *PaymentPlanUseCase) toResponses(list []*entity.PaymentPlan) ([]dto.PaymentPlanResponse, error) {
	reliability, err := uc.reliabilityIndex()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentPlanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *planResponse(p, reliability))
	}
	return items, nil
}

func (uc *PaymentPlanUseCase) toResponse(p *entity.PaymentPlan) *dto.PaymentPlanResponse {
	reliability, err := uc.reliabilityIndex()
	if err != nil {
		reliability = nil
	}
	return planResponse(p, reliability)
}

// reliabilityIndex indexa la confiabilidad por arrendatario para clasificar riesgo.
func (uc *PaymentPlanUseCase) reliabilityIndex() (map[string]int, error) {
	tenants, err := uc.tenants.List()
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int, len(tenants))
	for _, t := range tenants {
		idx[t.ID] = t.Reliability
	}
	return idx, nil
}

func planResponse(p *entity.PaymentPlan, reliability map[string]int) *dto.PaymentPlanResponse {
	if p == nil {
		return nil
	}
	out := &dto.PaymentPlanResponse{
		ID:               p.ID,
		TenantID:         p.TenantID,
		ConversationID:   p.ConversationID,
		WeeklyAmount:     p.WeeklyAmount,
		Duration:         p.Duration,
		TotalAmount:      p.TotalAmount,
		StartDate:        p.StartDate,
		IncludesLateFees: p.IncludesLateFees,
		Status:           p.Status,
		Coverage:         p.Coverage,
		CreatedAt:        p.CreatedAt,
	}
	if rel, ok := reliability[p.TenantID]; ok {
		out.Risk = triage.PaymentPlanRisk(p.Coverage, rel)
	}
	return out
}

package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// DashboardUseCase proyecciones de solo lectura sobre el snapshot completo
// del store. Se recalculan en cada llamada (los conjuntos de trabajo son
// pequeños); nunca mutan el store.
type DashboardUseCase struct {
	tenants       repository.TenantRepository
	conversations repository.ConversationRepository
	escalations   repository.EscalationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	tenants repository.TenantRepository,
	conversations repository.ConversationRepository,
	escalations repository.EscalationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{tenants: tenants, conversations: conversations, escalations: escalations}
}

// Stats calcula los KPIs del tablero: arrendatarios pending, arrendatarios
// in_progress (reportados como "active"), conversaciones con mensajes por
// aprobar, escalamientos abiertos, total de arrendatarios y suma decimal
// exacta de la deuda.
func (uc *DashboardUseCase) Stats() (*dto.DashboardStatsDTO, error) {
	tenants, err := uc.tenants.List()
	if err != nil {
		return nil, err
	}
	conversations, err := uc.conversations.List()
	if err != nil {
		return nil, err
	}
	escalations, err := uc.escalations.List()
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		TotalTenants: len(tenants),
		TotalOwed:    decimal.Zero,
	}
	for _, t := range tenants {
		switch t.Status {
		case entity.TenantStatusPending:
			stats.Pending++
		case entity.TenantStatusInProgress:
			stats.Active++
		}
		stats.TotalOwed = stats.TotalOwed.Add(t.AmountOwed)
	}
	for _, c := range conversations {
		if c.PendingApproval() {
			stats.Approval++
		}
	}
	for _, e := range escalations {
		if e.Status == entity.EscalationStatusOpen {
			stats.Escalated++
		}
	}
	return stats, nil
}

// QueueSummary agrupa la cola de cobranza por prioridad.
func (uc *DashboardUseCase) QueueSummary() (*dto.QueueSummaryDTO, error) {
	tenants, err := uc.tenants.List()
	if err != nil {
		return nil, err
	}
	out := &dto.QueueSummaryDTO{Total: len(tenants)}
	for _, t := range tenants {
		switch t.Priority {
		case entity.PriorityHigh:
			out.High++
		case entity.PriorityMedium:
			out.Medium++
		case entity.PriorityLow:
			out.Low++
		}
	}
	return out, nil
}

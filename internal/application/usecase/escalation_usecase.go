package usecase

import (
	"time"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/triage"
	"github.com/tu-usuario/cobranzas-pro/pkg/logger"
)

// EscalationUseCase consultas y resolución de escalamientos.
//
// Estados: open -> in_progress -> resolved (in_progress es opcional).
// Resolver un escalamiento ya resuelto es un no-op idempotente: el flujo
// tolera clics repetidos del operador y ResolvedAt conserva el primer valor.
type EscalationUseCase struct {
	repo repository.EscalationRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewEscalationUseCase construye el caso de uso.
func NewEscalationUseCase(repo repository.EscalationRepository, log *logger.Logger) *EscalationUseCase {
	return &EscalationUseCase{repo: repo, log: log, now: time.Now}
}

// List devuelve todos los escalamientos.
func (uc *EscalationUseCase) List() ([]dto.EscalationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EscalationResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEscalationResponse(e))
	}
	return items, nil
}

// GetByID obtiene un escalamiento por ID.
func (uc *EscalationUseCase) GetByID(id string) (*dto.EscalationResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toEscalationResponse(e), nil
}

// Create registra un escalamiento abierto.
func (uc *EscalationUseCase) Create(in dto.CreateEscalationRequest) (*dto.EscalationResponse, error) {
	if in.TenantID == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidEscalationType(in.Type) || !entity.ValidEscalationPriority(in.Priority) {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.repo.Create(&entity.Escalation{
		TenantID:       in.TenantID,
		ConversationID: in.ConversationID,
		Type:           in.Type,
		Priority:       in.Priority,
		Description:    in.Description,
		Status:         entity.EscalationStatusOpen,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("escalation_id", created.ID).Str("type", created.Type).
		Str("priority", created.Priority).Msg("escalamiento abierto")
	return toEscalationResponse(created), nil
}

// Update aplica una actualización parcial. Un cambio de Status pasa por la
// máquina de estados; el sello ResolvedAt del cliente se ignora y lo asigna
// el servidor al resolver.
func (uc *EscalationUseCase) Update(id string, in dto.UpdateEscalationRequest) (*dto.EscalationResponse, error) {
	updated, err := uc.repo.Update(id, func(e *entity.Escalation) error {
		if in.Type != nil {
			if !entity.ValidEscalationType(*in.Type) {
				return domain.ErrInvalidInput
			}
			e.Type = *in.Type
		}
		if in.Priority != nil {
			if !entity.ValidEscalationPriority(*in.Priority) {
				return domain.ErrInvalidInput
			}
			e.Priority = *in.Priority
		}
		if in.Description != nil {
			e.Description = *in.Description
		}
		if in.Status != nil {
			if !entity.ValidEscalationStatus(*in.Status) {
				return domain.ErrInvalidInput
			}
			return uc.transition(e, *in.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEscalationResponse(updated), nil
}

// Resolve marca el escalamiento como resuelto y sella ResolvedAt con la
// hora del servidor. Idempotente sobre un escalamiento ya resuelto.
func (uc *EscalationUseCase) Resolve(id string) (*dto.EscalationResponse, error) {
	updated, err := uc.repo.Update(id, func(e *entity.Escalation) error {
		return uc.transition(e, entity.EscalationStatusResolved)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("escalation_id", id).Msg("escalamiento resuelto")
	return toEscalationResponse(updated), nil
}

// transition aplica la máquina de estados del escalamiento. Repetir el
// estado actual es un no-op; resolved es terminal; no existe regreso a open.
func (uc *EscalationUseCase) transition(e *entity.Escalation, status string) error {
	if status == e.Status {
		return nil
	}
	switch {
	case e.Status == entity.EscalationStatusOpen && status == entity.EscalationStatusInProgress:
		e.Status = status
	case (e.Status == entity.EscalationStatusOpen || e.Status == entity.EscalationStatusInProgress) &&
		status == entity.EscalationStatusResolved:
		e.Status = status
		t := uc.now()
		e.ResolvedAt = &t
	default:
		return domain.ErrConflict
	}
	return nil
}

func toEscalationResponse(e *entity.Escalation) *dto.EscalationResponse {
	if e == nil {
		return nil
	}
	return &dto.EscalationResponse{
		ID:             e.ID,
		TenantID:       e.TenantID,
		ConversationID: e.ConversationID,
		Type:           e.Type,
		Priority:       e.Priority,
		Description:    e.Description,
		Status:         e.Status,
		PriorityLabel:  triage.EscalationPriorityLabel(e.Priority),
		TypeLabel:      triage.EscalationTypeLabel(e.Type),
		TypeGlyph:      triage.EscalationTypeGlyph(e.Type),
		CreatedAt:      e.CreatedAt,
		ResolvedAt:     e.ResolvedAt,
	}
}

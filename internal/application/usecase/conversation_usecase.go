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

// ConversationUseCase consultas y transiciones de conversaciones.
//
// El motor de transiciones define dos decisiones de operador mutuamente
// excluyentes: Approve limpia todos los flags needsApproval sin tocar el
// estado; Reject escala la conversación sin tocar los flags. Ninguna otra
// operación limpia un flag de aprobación.
type ConversationUseCase struct {
	repo repository.ConversationRepository
	log  *logger.Logger
}

// NewConversationUseCase construye el caso de uso.
func NewConversationUseCase(repo repository.ConversationRepository, log *logger.Logger) *ConversationUseCase {
	return &ConversationUseCase{repo: repo, log: log}
}

// List devuelve todas las conversaciones.
func (uc *ConversationUseCase) List() ([]dto.ConversationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConversationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConversationResponse(c))
	}
	return items, nil
}

// ListByTenant devuelve las conversaciones de un arrendatario.
func (uc *ConversationUseCase) ListByTenant(tenantID string) ([]dto.ConversationResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConversationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConversationResponse(c))
	}
	return items, nil
}

// GetByID obtiene una conversación por ID.
func (uc *ConversationUseCase) GetByID(id string) (*dto.ConversationResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toConversationResponse(c), nil
}

// Create registra una conversación nueva con sus mensajes iniciales.
func (uc *ConversationUseCase) Create(in dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	if in.TenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Confidence != nil && (*in.Confidence < 0 || *in.Confidence > 100) {
		return nil, domain.ErrInvalidInput
	}
	msgs := make([]entity.Message, 0, len(in.Messages))
	for _, m := range in.Messages {
		if !entity.ValidSender(m.Sender) || m.Content == "" {
			return nil, domain.ErrInvalidInput
		}
		ts := time.Now()
		if m.Timestamp != nil {
			ts = *m.Timestamp
		}
		msgs = append(msgs, entity.Message{
			Sender:          m.Sender,
			Content:         m.Content,
			OriginalContent: m.OriginalContent,
			Language:        m.Language,
			Timestamp:       ts,
			NeedsApproval:   m.NeedsApproval,
		})
	}
	created, err := uc.repo.Create(&entity.Conversation{
		TenantID:   in.TenantID,
		Messages:   msgs,
		Status:     entity.ConversationStatusActive,
		Confidence: in.Confidence,
	})
	if err != nil {
		return nil, err
	}
	return toConversationResponse(created), nil
}

// Update aplica una actualización parcial. Los estados completed y
// escalated son terminales: solo se acepta repetir el mismo estado.
func (uc *ConversationUseCase) Update(id string, in dto.UpdateConversationRequest) (*dto.ConversationResponse, error) {
	updated, err := uc.repo.Update(id, func(c *entity.Conversation) error {
		if in.Confidence != nil {
			if *in.Confidence < 0 || *in.Confidence > 100 {
				return domain.ErrInvalidInput
			}
			c.Confidence = in.Confidence
		}
		if in.Status != nil && *in.Status != c.Status {
			if !entity.ValidConversationStatus(*in.Status) {
				return domain.ErrInvalidInput
			}
			if c.Status != entity.ConversationStatusActive {
				return domain.ErrConflict
			}
			c.Status = *in.Status
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toConversationResponse(updated), nil
}

// Approve limpia el flag needsApproval de todos los mensajes de la
// conversación. No altera el estado ni el contenido; repetirla no cambia
// nada (idempotente).
func (uc *ConversationUseCase) Approve(id string) (*dto.ConversationResponse, error) {
	var cleared int
	updated, err := uc.repo.Update(id, func(c *entity.Conversation) error {
		for i := range c.Messages {
			if c.Messages[i].NeedsApproval {
				c.Messages[i].NeedsApproval = false
				cleared++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("conversation_id", id).Int("cleared", cleared).Msg("borrador aprobado")
	return toConversationResponse(updated), nil
}

// Reject escala la conversación. No altera los flags de los mensajes;
// una aprobación posterior no revierte el escalamiento.
func (uc *ConversationUseCase) Reject(id string) (*dto.ConversationResponse, error) {
	updated, err := uc.repo.Update(id, func(c *entity.Conversation) error {
		c.Status = entity.ConversationStatusEscalated
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("conversation_id", id).Msg("borrador rechazado, conversación escalada")
	return toConversationResponse(updated), nil
}

// ApproveAllEligible aprueba todas las conversaciones con mensajes
// pendientes cuya certeza alcanza el umbral de aprobación masiva (85,
// distinto del corte de 90 del nivel auto_approvable).
func (uc *ConversationUseCase) ApproveAllEligible() (*dto.BulkApproveResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	approved := 0
	for _, c := range list {
		if !c.PendingApproval() || c.Confidence == nil || !triage.BulkApprovable(*c.Confidence) {
			continue
		}
		if _, err := uc.Approve(c.ID); err != nil {
			return nil, err
		}
		approved++
	}
	uc.log.Info().Int("approved", approved).Msg("aprobación masiva completada")
	return &dto.BulkApproveResponse{Approved: approved}, nil
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	if c == nil {
		return nil
	}
	msgs := make([]dto.MessageDTO, 0, len(c.Messages))
	for _, m := range c.Messages {
		msgs = append(msgs, dto.MessageDTO{
			ID:              m.ID,
			Sender:          m.Sender,
			Content:         m.Content,
			OriginalContent: m.OriginalContent,
			Language:        m.Language,
			Timestamp:       m.Timestamp,
			NeedsApproval:   m.NeedsApproval,
		})
	}
	out := &dto.ConversationResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		Messages:      msgs,
		Status:        c.Status,
		Confidence:    c.Confidence,
		StartedAt:     c.StartedAt,
		LastMessageAt: c.LastMessageAt,
	}
	if c.Confidence != nil {
		out.ConfidenceTier = triage.ClassifyConfidence(*c.Confidence)
	}
	return out
}

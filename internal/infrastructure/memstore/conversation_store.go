package memstore

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// ConversationStore implementa repository.ConversationRepository sobre el store en memoria.
type ConversationStore struct {
	s *Store
}

// List devuelve todas las conversaciones en orden de inserción.
func (r *ConversationStore) List() ([]*entity.Conversation, error) {
	return r.s.conversations.list(), nil
}

// GetByID devuelve la conversación o domain.ErrNotFound.
func (r *ConversationStore) GetByID(id string) (*entity.Conversation, error) {
	return r.s.conversations.get(id)
}

// ListByTenant devuelve las conversaciones del arrendatario indicado.
func (r *ConversationStore) ListByTenant(tenantID string) ([]*entity.Conversation, error) {
	return r.s.conversations.filter(func(c *entity.Conversation) bool {
		return c.TenantID == tenantID
	}), nil
}

// Create registra una conversación nueva. El store asigna id y StartedAt,
// además del id de cada mensaje embebido que llegue sin uno.
func (r *ConversationStore) Create(c *entity.Conversation) (*entity.Conversation, error) {
	rec := c.Clone()
	rec.ID = uuid.New().String()
	rec.StartedAt = r.s.now()
	if rec.LastMessageAt.IsZero() && len(rec.Messages) > 0 {
		rec.LastMessageAt = rec.Messages[len(rec.Messages)-1].Timestamp
	}
	for i := range rec.Messages {
		if rec.Messages[i].ID == "" {
			rec.Messages[i].ID = uuid.New().String()
		}
	}
	r.s.conversations.insert(rec.ID, rec)
	return rec.Clone(), nil
}

// Update aplica el mutador bajo el lock del registro.
func (r *ConversationStore) Update(id string, mutate func(*entity.Conversation) error) (*entity.Conversation, error) {
	return r.s.conversations.update(id, mutate)
}

// SetMessageApproval escribe el flag de aprobación de un único mensaje,
// direccionado por id, sin reemplazar el arreglo completo.
func (r *ConversationStore) SetMessageApproval(conversationID, messageID string, value bool) (*entity.Conversation, error) {
	return r.s.conversations.update(conversationID, func(c *entity.Conversation) error {
		for i := range c.Messages {
			if c.Messages[i].ID == messageID {
				c.Messages[i].NeedsApproval = value
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

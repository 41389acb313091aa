package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// ConversationRepository define el puerto de persistencia para Conversation.
//
// SetMessageApproval escribe el flag de un único mensaje direccionable por id,
// bajo el lock del registro; evita reemplazar el arreglo completo de mensajes.
type ConversationRepository interface {
	List() ([]*entity.Conversation, error)
	GetByID(id string) (*entity.Conversation, error)
	ListByTenant(tenantID string) ([]*entity.Conversation, error)
	Create(c *entity.Conversation) (*entity.Conversation, error)
	Update(id string, mutate func(*entity.Conversation) error) (*entity.Conversation, error)
	SetMessageApproval(conversationID, messageID string, value bool) (*entity.Conversation, error)
}

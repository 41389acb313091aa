package entity

import "time"

// Estados de Conversation.
const (
	ConversationStatusActive    = "active"
	ConversationStatusCompleted = "completed"
	ConversationStatusEscalated = "escalated"
)

// Remitentes posibles de un mensaje.
const (
	SenderTenant  = "tenant"
	SenderAI      = "ai"
	SenderManager = "manager"
)

// Message es un mensaje embebido en una conversación (no es entidad independiente).
// El orden de inserción en Conversation.Messages es el orden cronológico.
type Message struct {
	ID              string
	Sender          string
	Content         string
	OriginalContent string // texto original cuando el mensaje no es en inglés
	Language        string
	Timestamp       time.Time
	NeedsApproval   bool
}

// Conversation es el hilo de mensajes entre un arrendatario y el sistema de cobranza.
// Pertenece a exactamente un Tenant; los mensajes solo se agregan al final.
type Conversation struct {
	ID            string
	TenantID      string
	Messages      []Message
	Status        string
	Confidence    *int // certeza 0-100 del borrador de la IA; nil si no aplica
	StartedAt     time.Time
	LastMessageAt time.Time
}

// Clone devuelve una copia independiente, incluyendo el slice de mensajes.
func (c *Conversation) Clone() *Conversation {
	cp := *c
	cp.Messages = make([]Message, len(c.Messages))
	copy(cp.Messages, c.Messages)
	if c.Confidence != nil {
		cf := *c.Confidence
		cp.Confidence = &cf
	}
	return &cp
}

// PendingApproval indica si la conversación tiene al menos un mensaje por aprobar.
func (c *Conversation) PendingApproval() bool {
	for i := range c.Messages {
		if c.Messages[i].NeedsApproval {
			return true
		}
	}
	return false
}

// ValidConversationStatus indica si s es un estado de Conversation conocido.
func ValidConversationStatus(s string) bool {
	switch s {
	case ConversationStatusActive, ConversationStatusCompleted, ConversationStatusEscalated:
		return true
	}
	return false
}

// ValidSender indica si s es un remitente conocido.
func ValidSender(s string) bool {
	switch s {
	case SenderTenant, SenderAI, SenderManager:
		return true
	}
	return false
}

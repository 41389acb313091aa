package dto

import "time"

// MessageDTO mensaje embebido de una conversación.
type MessageDTO struct {
	ID              string    `json:"id"`
	Sender          string    `json:"sender"`
	Content         string    `json:"content"`
	OriginalContent string    `json:"originalContent,omitempty"`
	Language        string    `json:"language,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	NeedsApproval   bool      `json:"needsApproval,omitempty"`
}

// ConversationResponse representación de una conversación en la API.
// ConfidenceTier es salida del clasificador (auto_approvable/review/low);
// se omite cuando la conversación no tiene certeza registrada.
type ConversationResponse struct {
	ID             string       `json:"id"`
	TenantID       string       `json:"tenantId"`
	Messages       []MessageDTO `json:"messages"`
	Status         string       `json:"status"`
	Confidence     *int         `json:"confidence"`
	ConfidenceTier string       `json:"confidenceTier,omitempty"`
	StartedAt      time.Time    `json:"startedAt"`
	LastMessageAt  time.Time    `json:"lastMessageAt"`
}

// NewMessageRequest mensaje inicial de una conversación nueva.
type NewMessageRequest struct {
	Sender          string     `json:"sender"`
	Content         string     `json:"content"`
	OriginalContent string     `json:"originalContent"`
	Language        string     `json:"language"`
	Timestamp       *time.Time `json:"timestamp"`
	NeedsApproval   bool       `json:"needsApproval"`
}

// CreateConversationRequest alta de una conversación.
type CreateConversationRequest struct {
	TenantID   string              `json:"tenantId"`
	Messages   []NewMessageRequest `json:"messages"`
	Confidence *int                `json:"confidence"`
}

// UpdateConversationRequest comando de actualización parcial. Los flags de
// aprobación de mensajes no se tocan por PATCH: eso es exclusivo de las
// operaciones approve/reject del motor de transiciones.
type UpdateConversationRequest struct {
	Status     *string `json:"status"`
	Confidence *int    `json:"confidence"`
}

// BulkApproveResponse resultado de la aprobación masiva.
type BulkApproveResponse struct {
	Approved int `json:"approved"`
}

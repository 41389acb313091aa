package dto

import "time"

// EscalationResponse representación de un escalamiento en la API.
// PriorityLabel, TypeLabel y TypeGlyph son salidas del clasificador.
type EscalationResponse struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenantId"`
	ConversationID string     `json:"conversationId,omitempty"`
	Type           string     `json:"type"`
	Priority       string     `json:"priority"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	PriorityLabel  string     `json:"priorityLabel"`
	TypeLabel      string     `json:"typeLabel"`
	TypeGlyph      string     `json:"typeGlyph"`
	CreatedAt      time.Time  `json:"createdAt"`
	ResolvedAt     *time.Time `json:"resolvedAt"`
}

// CreateEscalationRequest alta de un escalamiento.
type CreateEscalationRequest struct {
	TenantID       string `json:"tenantId"`
	ConversationID string `json:"conversationId"`
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	Description    string `json:"description"`
}

// UpdateEscalationRequest comando de actualización parcial. El cliente
// histórico envía resolvedAt junto con status=resolved; se acepta la clave
// pero el sello de tiempo lo asigna siempre el servidor.
type UpdateEscalationRequest struct {
	Type        *string    `json:"type"`
	Priority    *string    `json:"priority"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

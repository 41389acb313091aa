package entity

import "time"

// Tipos de escalamiento que la IA o el operador pueden levantar.
const (
	EscalationPhoneFailed      = "phone_failed"
	EscalationThreatening      = "threatening"
	EscalationAmountDispute    = "amount_dispute"
	EscalationComplexSituation = "complex_situation"
	EscalationNoResponse       = "no_response"
)

// Prioridades de atención de un escalamiento.
const (
	EscalationPriorityImmediate       = "immediate"
	EscalationPrioritySameDay         = "same_day"
	EscalationPriorityNextBusinessDay = "next_business_day"
)

// Estados de Escalation.
const (
	EscalationStatusOpen       = "open"
	EscalationStatusInProgress = "in_progress"
	EscalationStatusResolved   = "resolved"
)

// Escalation es una situación que requiere intervención humana más allá
// del manejo automatizado. ResolvedAt solo se asigna al resolver.
type Escalation struct {
	ID             string
	TenantID       string
	ConversationID string // opcional
	Type           string
	Priority       string
	Description    string
	Status         string
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}

// Clone devuelve una copia independiente.
func (e *Escalation) Clone() *Escalation {
	cp := *e
	if e.ResolvedAt != nil {
		rt := *e.ResolvedAt
		cp.ResolvedAt = &rt
	}
	return &cp
}

// ValidEscalationType indica si t es un tipo de escalamiento conocido.
func ValidEscalationType(t string) bool {
	switch t {
	case EscalationPhoneFailed, EscalationThreatening, EscalationAmountDispute,
		EscalationComplexSituation, EscalationNoResponse:
		return true
	}
	return false
}

// ValidEscalationPriority indica si p es una prioridad de escalamiento conocida.
func ValidEscalationPriority(p string) bool {
	switch p {
	case EscalationPriorityImmediate, EscalationPrioritySameDay, EscalationPriorityNextBusinessDay:
		return true
	}
	return false
}

// ValidEscalationStatus indica si s es un estado de Escalation conocido.
func ValidEscalationStatus(s string) bool {
	switch s {
	case EscalationStatusOpen, EscalationStatusInProgress, EscalationStatusResolved:
		return true
	}
	return false
}

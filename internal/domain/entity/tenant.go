package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Tenant dentro del flujo de cobranza.
const (
	TenantStatusPending          = "pending"
	TenantStatusInProgress       = "in_progress"
	TenantStatusAwaitingApproval = "awaiting_approval"
	TenantStatusNegotiating      = "negotiating"
	TenantStatusEscalated        = "escalated"
	TenantStatusCompleted        = "completed"
)

// Prioridades de atención en la cola de cobranza.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Tenant representa un arrendatario con saldo en mora.
// Invariantes: Reliability en [1,10]; AmountOwed >= 0.
type Tenant struct {
	ID          string
	Name        string
	Unit        string
	Property    string
	Phone       string
	Language    string
	AmountOwed  decimal.Decimal
	DaysLate    int
	Reliability int // escala 1-10 de confiabilidad histórica de pago
	Priority    string
	Status      string
	LastContact *time.Time
	Notes       string
	CreatedAt   time.Time
}

// Clone devuelve una copia independiente (el store nunca expone sus punteros internos).
func (t *Tenant) Clone() *Tenant {
	cp := *t
	if t.LastContact != nil {
		lc := *t.LastContact
		cp.LastContact = &lc
	}
	return &cp
}

// ValidTenantStatus indica si s es un estado de Tenant conocido.
func ValidTenantStatus(s string) bool {
	switch s {
	case TenantStatusPending, TenantStatusInProgress, TenantStatusAwaitingApproval,
		TenantStatusNegotiating, TenantStatusEscalated, TenantStatusCompleted:
		return true
	}
	return false
}

// ValidPriority indica si p es una prioridad conocida.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

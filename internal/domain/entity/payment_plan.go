package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de PaymentPlan. El motor de transiciones solo decide
// proposed -> approved | denied; active/completed pertenecen al ciclo
// de cobro posterior (fuera del alcance del motor).
const (
	PlanStatusProposed  = "proposed"
	PlanStatusApproved  = "approved"
	PlanStatusDenied    = "denied"
	PlanStatusActive    = "active"
	PlanStatusCompleted = "completed"
)

// PaymentPlan es una propuesta de pago en cuotas para saldar la mora de un Tenant.
type PaymentPlan struct {
	ID               string
	TenantID         string
	ConversationID   string // opcional: conversación donde se negoció
	WeeklyAmount     decimal.Decimal
	Duration         int // semanas
	TotalAmount      decimal.Decimal
	StartDate        string
	IncludesLateFees bool
	Status           string
	Coverage         int // porcentaje de la deuda cubierto; puede superar 100
	CreatedAt        time.Time
}

// Clone devuelve una copia independiente.
func (p *PaymentPlan) Clone() *PaymentPlan {
	cp := *p
	return &cp
}

// Terminal indica si el plan ya recibió una decisión del operador.
func (p *PaymentPlan) Terminal() bool {
	return p.Status == PlanStatusApproved || p.Status == PlanStatusDenied
}

// ValidPlanStatus indica si s es un estado de PaymentPlan conocido.
func ValidPlanStatus(s string) bool {
	switch s {
	case PlanStatusProposed, PlanStatusApproved, PlanStatusDenied,
		PlanStatusActive, PlanStatusCompleted:
		return true
	}
	return false
}

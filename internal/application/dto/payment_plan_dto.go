package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentPlanResponse representación de un plan de pagos en la API.
// Risk es salida del clasificador (low/medium/high) calculada con la
// cobertura del plan y la confiabilidad del arrendatario.
type PaymentPlanResponse struct {
	ID               string          `json:"id"`
	TenantID         string          `json:"tenantId"`
	ConversationID   string          `json:"conversationId,omitempty"`
	WeeklyAmount     decimal.Decimal `json:"weeklyAmount"`
	Duration         int             `json:"duration"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	StartDate        string          `json:"startDate"`
	IncludesLateFees bool            `json:"includesLateFees"`
	Status           string          `json:"status"`
	Coverage         int             `json:"coverage"`
	Risk             string          `json:"risk,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// CreatePaymentPlanRequest alta de un plan propuesto.
type CreatePaymentPlanRequest struct {
	TenantID         string          `json:"tenantId"`
	ConversationID   string          `json:"conversationId"`
	WeeklyAmount     decimal.Decimal `json:"weeklyAmount"`
	Duration         int             `json:"duration"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	StartDate        string          `json:"startDate"`
	IncludesLateFees bool            `json:"includesLateFees"`
	Coverage         int             `json:"coverage"`
}

// UpdatePaymentPlanRequest comando de actualización parcial. Un cambio de
// Status pasa por el motor de transiciones (proposed -> approved | denied).
type UpdatePaymentPlanRequest struct {
	WeeklyAmount     *decimal.Decimal `json:"weeklyAmount"`
	Duration         *int             `json:"duration"`
	TotalAmount      *decimal.Decimal `json:"totalAmount"`
	StartDate        *string          `json:"startDate"`
	IncludesLateFees *bool            `json:"includesLateFees"`
	Status           *string          `json:"status"`
	Coverage         *int             `json:"coverage"`
}

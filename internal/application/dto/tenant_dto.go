package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantResponse representación de un arrendatario en la API.
type TenantResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Property    string          `json:"property"`
	Phone       string          `json:"phone"`
	Language    string          `json:"language"`
	AmountOwed  decimal.Decimal `json:"amountOwed"`
	DaysLate    int             `json:"daysLate"`
	Reliability int             `json:"reliability"`
	Priority    string          `json:"priority"`
	Status      string          `json:"status"`
	LastContact *time.Time      `json:"lastContact"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateTenantRequest alta de un arrendatario (intake).
type CreateTenantRequest struct {
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Property    string          `json:"property"`
	Phone       string          `json:"phone"`
	Language    string          `json:"language"`
	AmountOwed  decimal.Decimal `json:"amountOwed"`
	DaysLate    int             `json:"daysLate"`
	Reliability int             `json:"reliability"`
	Priority    string          `json:"priority"`
	Status      string          `json:"status"`
	LastContact *time.Time      `json:"lastContact"`
	Notes       string          `json:"notes"`
}

// UpdateTenantRequest comando de actualización parcial. Solo lista los
// campos legalmente mutables; claves desconocidas se rechazan en el borde.
type UpdateTenantRequest struct {
	Name        *string          `json:"name"`
	Unit        *string          `json:"unit"`
	Property    *string          `json:"property"`
	Phone       *string          `json:"phone"`
	Language    *string          `json:"language"`
	AmountOwed  *decimal.Decimal `json:"amountOwed"`
	DaysLate    *int             `json:"daysLate"`
	Reliability *int             `json:"reliability"`
	Priority    *string          `json:"priority"`
	Status      *string          `json:"status"`
	LastContact *time.Time       `json:"lastContact"`
	Notes       *string          `json:"notes"`
}

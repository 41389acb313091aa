package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Proyección de solo lectura recalculada en cada llamada.
type DashboardStatsDTO struct {
	Pending      int             `json:"pending"`      // arrendatarios en estado pending
	Active       int             `json:"active"`       // arrendatarios en estado in_progress
	Approval     int             `json:"approval"`     // conversaciones con algún mensaje por aprobar
	Escalated    int             `json:"escalated"`    // escalamientos abiertos
	TotalTenants int             `json:"totalTenants"` // total de arrendatarios
	TotalOwed    decimal.Decimal `json:"totalOwed"`    // suma decimal exacta de amountOwed
}

// QueueSummaryDTO respuesta de GET /api/dashboard/queue: conteo de la cola
// de cobranza agrupado por prioridad.
type QueueSummaryDTO struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

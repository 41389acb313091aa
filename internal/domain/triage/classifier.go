// Package triage implementa la clasificación de riesgo y prioridad de la
// cola de cobranza (servicio de dominio, funciones puras sin efectos).
package triage

import "strings"

// Niveles de certeza de un borrador de la IA.
const (
	TierAutoApprovable = "auto_approvable" // >= 90
	TierReview         = "review"          // 70-89
	TierLow            = "low"             // < 70
)

// BulkApproveThreshold es el corte de elegibilidad para la aprobación masiva.
// Es distinto al corte de 90 del nivel auto_approvable: los dos umbrales
// existen por separado en el flujo de revisión y no deben unificarse.
const BulkApproveThreshold = 85

// Niveles de riesgo de un plan de pagos.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ClassifyConfidence clasifica la certeza 0-100 de un borrador en su nivel de revisión.
func ClassifyConfidence(confidence int) string {
	switch {
	case confidence >= 90:
		return TierAutoApprovable
	case confidence >= 70:
		return TierReview
	default:
		return TierLow
	}
}

// BulkApprovable indica si un borrador es elegible para aprobación masiva.
func BulkApprovable(confidence int) bool {
	return confidence >= BulkApproveThreshold
}

// PaymentPlanRisk clasifica el riesgo de un plan según la cobertura de la
// deuda y la confiabilidad (1-10) del arrendatario. El chequeo de riesgo
// bajo se evalúa primero: un plan que cumple ambos umbrales es low.
func PaymentPlanRisk(coverage, reliability int) string {
	if coverage >= 95 && reliability >= 7 {
		return RiskLow
	}
	if coverage >= 80 && reliability >= 5 {
		return RiskMedium
	}
	return RiskHigh
}

// EscalationPriorityLabel devuelve la etiqueta de pantalla de una prioridad
// de escalamiento. Función total: valores desconocidos se formatean en mayúsculas.
func EscalationPriorityLabel(priority string) string {
	switch priority {
	case "immediate":
		return "IMMEDIATE ATTENTION"
	case "same_day":
		return "SAME DAY RESPONSE"
	case "next_business_day":
		return "NEXT BUSINESS DAY"
	default:
		return strings.ToUpper(strings.ReplaceAll(priority, "_", " "))
	}
}

// EscalationTypeGlyph devuelve el glifo de pantalla de un tipo de escalamiento.
// Función total: tipos desconocidos devuelven el glifo de incógnita.
func EscalationTypeGlyph(escType string) string {
	switch escType {
	case "phone_failed":
		return "📞"
	case "threatening":
		return "🚨"
	case "amount_dispute":
		return "⚠️"
	case "complex_situation":
		return "🔄"
	case "no_response":
		return "ℹ️"
	default:
		return "❓"
	}
}

// EscalationTypeLabel devuelve la etiqueta de pantalla de un tipo de escalamiento.
func EscalationTypeLabel(escType string) string {
	return strings.ToUpper(strings.ReplaceAll(escType, "_", " "))
}

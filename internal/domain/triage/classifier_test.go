package triage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/triage"
)

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyConfidence
// ──────────────────────────────────────────────────────────────────────────────

// Los cortes de nivel son 90 y 70; los bordes pertenecen al nivel superior.
func TestClassifyConfidence_Bordes(t *testing.T) {
	cases := []struct {
		confidence int
		want       string
	}{
		{100, triage.TierAutoApprovable},
		{90, triage.TierAutoApprovable},
		{89, triage.TierReview},
		{70, triage.TierReview},
		{69, triage.TierLow},
		{0, triage.TierLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, triage.ClassifyConfidence(tc.confidence), "confidence=%d", tc.confidence)
	}
}

// El umbral de aprobación masiva es 85, distinto del corte de 90 del nivel
// auto_approvable: 85-89 es elegible para aprobación masiva aunque su nivel
// de pantalla sea review.
func TestBulkApprovable_UmbralDistintoAlNivel(t *testing.T) {
	assert.True(t, triage.BulkApprovable(85))
	assert.True(t, triage.BulkApprovable(89))
	assert.False(t, triage.BulkApprovable(84))

	assert.Equal(t, triage.TierReview, triage.ClassifyConfidence(85))
	assert.Equal(t, 85, triage.BulkApproveThreshold)
}

// ──────────────────────────────────────────────────────────────────────────────
// PaymentPlanRisk
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentPlanRisk_MatrizDeUmbrales(t *testing.T) {
	cases := []struct {
		name                  string
		coverage, reliability int
		want                  string
	}{
		// low: coverage >= 95 y reliability >= 7
		{"low en el borde exacto", 95, 7, triage.RiskLow},
		{"low con holgura", 100, 10, triage.RiskLow},
		{"coverage sobre 100 sigue siendo low", 120, 8, triage.RiskLow},

		// medium: coverage >= 80 y reliability >= 5
		{"medium en el borde exacto", 80, 5, triage.RiskMedium},
		{"cobertura alta pero reliability 5-6 cae a medium", 100, 5, triage.RiskMedium},
		{"coverage 94 no alcanza low", 94, 10, triage.RiskMedium},
		{"reliability 6 no alcanza low", 95, 6, triage.RiskMedium},

		// high: todo lo demás
		{"coverage 79 es high", 79, 10, triage.RiskHigh},
		{"reliability 4 es high", 100, 4, triage.RiskHigh},
		{"ambos bajos", 50, 1, triage.RiskHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, triage.PaymentPlanRisk(tc.coverage, tc.reliability))
		})
	}
}

// El chequeo low se evalúa primero: un plan que cumple ambos umbrales es low.
func TestPaymentPlanRisk_LowTienePrecedencia(t *testing.T) {
	assert.Equal(t, triage.RiskLow, triage.PaymentPlanRisk(95, 7))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablas de etiquetas (funciones totales)
// ──────────────────────────────────────────────────────────────────────────────

func TestEscalationPriorityLabel(t *testing.T) {
	assert.Equal(t, "IMMEDIATE ATTENTION", triage.EscalationPriorityLabel("immediate"))
	assert.Equal(t, "SAME DAY RESPONSE", triage.EscalationPriorityLabel("same_day"))
	assert.Equal(t, "NEXT BUSINESS DAY", triage.EscalationPriorityLabel("next_business_day"))
	// Valor desconocido: fallback en mayúsculas, nunca falla.
	assert.Equal(t, "ALGO RARO", triage.EscalationPriorityLabel("algo_raro"))
}

func TestEscalationTypeGlyph(t *testing.T) {
	assert.Equal(t, "📞", triage.EscalationTypeGlyph("phone_failed"))
	assert.Equal(t, "🚨", triage.EscalationTypeGlyph("threatening"))
	assert.Equal(t, "⚠️", triage.EscalationTypeGlyph("amount_dispute"))
	assert.Equal(t, "🔄", triage.EscalationTypeGlyph("complex_situation"))
	assert.Equal(t, "ℹ️", triage.EscalationTypeGlyph("no_response"))
	assert.Equal(t, "❓", triage.EscalationTypeGlyph("tipo_desconocido"))
}

func TestEscalationTypeLabel(t *testing.T) {
	assert.Equal(t, "PHONE FAILED", triage.EscalationTypeLabel("phone_failed"))
	assert.Equal(t, "AMOUNT DISPUTE", triage.EscalationTypeLabel("amount_dispute"))
}

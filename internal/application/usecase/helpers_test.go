package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/infrastructure/memstore"
	"github.com/tu-usuario/cobranzas-pro/pkg/logger"
)

// Logger silencioso para los tests de casos de uso.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func tenantDePrueba(reliability int, status string) *entity.Tenant {
	return &entity.Tenant{
		Name:        "Ana Prueba",
		Unit:        "Unit 9Z",
		Property:    "Pine Heights",
		Phone:       "(555) 111-2222",
		Language:    "English",
		AmountOwed:  decimal.RequireFromString("500.00"),
		DaysLate:    20,
		Reliability: reliability,
		Priority:    entity.PriorityMedium,
		Status:      status,
	}
}

// conversaciónConBorradores crea en el store una conversación con n mensajes,
// marcando como pendientes de aprobación los índices indicados.
func conversacionConBorradores(s *memstore.Store, tenantID string, confidence *int, total int, pendientes ...int) (*entity.Conversation, error) {
	pend := make(map[int]bool, len(pendientes))
	for _, i := range pendientes {
		pend[i] = true
	}
	msgs := make([]entity.Message, 0, total)
	base := time.Now().Add(-time.Duration(total) * time.Minute)
	for i := 0; i < total; i++ {
		msgs = append(msgs, entity.Message{
			Sender:        entity.SenderAI,
			Content:       "mensaje",
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
			NeedsApproval: pend[i],
		})
	}
	return s.Conversations().Create(&entity.Conversation{
		TenantID:   tenantID,
		Messages:   msgs,
		Status:     entity.ConversationStatusActive,
		Confidence: confidence,
	})
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

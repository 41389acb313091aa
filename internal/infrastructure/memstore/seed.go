package memstore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// SeedDemoData carga el juego de datos de demostración del tablero:
// cinco arrendatarios en mora, tres conversaciones activas (dos con un
// borrador de la IA pendiente de aprobación), dos planes propuestos y dos
// escalamientos abiertos. Pensado para development; el store de producción
// arranca vacío.
func (s *Store) SeedDemoData() error {
	now := s.now()

	tenants := []*entity.Tenant{
		{
			Name: "Maria Rodriguez", Unit: "Unit 3A", Property: "Oak Village",
			Phone: "(555) 123-4567", Language: "Spanish",
			AmountOwed: decimal.RequireFromString("1247.00"), DaysLate: 47,
			Reliability: 6, Priority: entity.PriorityHigh, Status: entity.TenantStatusAwaitingApproval,
			Notes: "Tenant requested Spanish communication, prefers Friday payment start dates",
		},
		{
			Name: "James Wilson", Unit: "Unit 1C", Property: "Maple Commons",
			Phone: "(555) 987-6543", Language: "English",
			AmountOwed: decimal.RequireFromString("890.00"), DaysLate: 34,
			Reliability: 7, Priority: entity.PriorityMedium, Status: entity.TenantStatusInProgress,
			Notes: "Usually responds within 4 hours",
		},
		{
			Name: "Sarah Johnson", Unit: "Unit 2B", Property: "Oak Village",
			Phone: "(555) 456-7890", Language: "English",
			AmountOwed: decimal.RequireFromString("445.00"), DaysLate: 31,
			Reliability: 8, Priority: entity.PriorityLow, Status: entity.TenantStatusPending,
			Notes: "Good payment history",
		},
		{
			Name: "Michael Chen", Unit: "Unit 4A", Property: "Pine Heights",
			Phone: "(555) 321-9876", Language: "English",
			AmountOwed: decimal.RequireFromString("1567.00"), DaysLate: 62,
			Reliability: 4, Priority: entity.PriorityHigh, Status: entity.TenantStatusEscalated,
			Notes: "Multiple failed payment attempts",
		},
		{
			Name: "James Thompson", Unit: "Unit 1B", Property: "Maple Commons",
			Phone: "(555) 234-5678", Language: "English",
			AmountOwed: decimal.RequireFromString("890.00"), DaysLate: 34,
			Reliability: 7, Priority: entity.PriorityMedium, Status: entity.TenantStatusNegotiating,
			Notes: "Successful payment history, prefers Friday starts",
		},
	}

	tenantIDs := make([]string, 0, len(tenants))
	for i, t := range tenants {
		lc := now.Add(-time.Duration(i+1) * 24 * time.Hour)
		t.LastContact = &lc
		created, err := s.Tenants().Create(t)
		if err != nil {
			return err
		}
		tenantIDs = append(tenantIDs, created.ID)
	}

	type thread struct {
		tenantIdx  int
		confidence int
		messages   []entity.Message
	}
	threads := []thread{
		{
			tenantIdx: 0, confidence: 85,
			messages: []entity.Message{
				{Sender: entity.SenderAI, Content: "Hola Maria, su renta de $567 está 47 días atrasada. ¿Podemos establecer un plan de pagos?", Language: "Spanish", Timestamp: now.Add(-4 * time.Hour)},
				{Sender: entity.SenderTenant, Content: "Hola, si puedo hacer plan de pagos. ¿Cuando puedo empezar?", Language: "Spanish", Timestamp: now.Add(-3 * time.Hour)},
				{Sender: entity.SenderAI, Content: "Podemos empezar este viernes. ¿$75 por semana por 8 semanas?", Language: "Spanish", Timestamp: now.Add(-2 * time.Hour)},
				{Sender: entity.SenderTenant, Content: "Si, puedo pagar $75 por semana por 8 semanas empezando viernes", Language: "Spanish", Timestamp: now.Add(-30 * time.Minute)},
				{Sender: entity.SenderAI, Content: "¡Perfecto Maria! $75 por semana por 8 semanas cubre el total de $600. ¿Podemos confirmar que empezará este viernes 12 de enero? Te enviaré recordatorios cada jueves. - Stanton Management", Language: "Spanish", Timestamp: now, NeedsApproval: true},
			},
		},
		{
			tenantIdx: 1, confidence: 72,
			messages: []entity.Message{
				{Sender: entity.SenderAI, Content: "Hi, your rent payment of $890 is 34 days overdue. Can we set up a payment plan?", Timestamp: now.Add(-4 * time.Hour)},
				{Sender: entity.SenderTenant, Content: "Yes, I can do a payment plan. When can I start?", Timestamp: now.Add(-3 * time.Hour)},
				{Sender: entity.SenderAI, Content: "We can start this Friday. How about $120 per week for 8 weeks?", Timestamp: now.Add(-2 * time.Hour)},
				{Sender: entity.SenderTenant, Content: "I can do $50 every two weeks starting next Friday, that should work for both of us", Timestamp: now.Add(-30 * time.Minute)},
				{Sender: entity.SenderAI, Content: "Hi James! $50 every two weeks works great. That means $100 per month, so it would take about 9 payments to cover your balance of $890. Can we confirm the first payment for January 19th? - Stanton Management", Timestamp: now, NeedsApproval: true},
			},
		},
		{
			tenantIdx: 2, confidence: 72,
			messages: []entity.Message{
				{Sender: entity.SenderAI, Content: "Hi, your rent payment of $445 is 31 days overdue. Can we set up a payment plan?", Timestamp: now.Add(-4 * time.Hour)},
				{Sender: entity.SenderTenant, Content: "Yes, I can do a payment plan. When can I start?", Timestamp: now.Add(-3 * time.Hour)},
			},
		},
	}

	conversationIDs := make([]string, 0, len(threads))
	for _, th := range threads {
		conf := th.confidence
		created, err := s.Conversations().Create(&entity.Conversation{
			TenantID:      tenantIDs[th.tenantIdx],
			Messages:      th.messages,
			Status:        entity.ConversationStatusActive,
			Confidence:    &conf,
			LastMessageAt: th.messages[len(th.messages)-1].Timestamp,
		})
		if err != nil {
			return err
		}
		conversationIDs = append(conversationIDs, created.ID)
	}

	plans := []*entity.PaymentPlan{
		{
			TenantID: tenantIDs[0], ConversationID: conversationIDs[0],
			WeeklyAmount: decimal.RequireFromString("75.00"), Duration: 8,
			TotalAmount: decimal.RequireFromString("600.00"), StartDate: "2025-01-12",
			IncludesLateFees: true, Status: entity.PlanStatusProposed, Coverage: 100,
		},
		{
			TenantID: tenantIDs[1], ConversationID: conversationIDs[1],
			WeeklyAmount: decimal.RequireFromString("50.00"), Duration: 18,
			TotalAmount: decimal.RequireFromString("900.00"), StartDate: "2025-01-12",
			IncludesLateFees: true, Status: entity.PlanStatusProposed, Coverage: 101,
		},
	}
	for _, p := range plans {
		if _, err := s.PaymentPlans().Create(p); err != nil {
			return err
		}
	}

	escalations := []*entity.Escalation{
		{
			TenantID: tenantIDs[3], Type: entity.EscalationPhoneFailed,
			Priority:    entity.EscalationPriorityImmediate,
			Description: "Primary phone (555-321-9876) failed after 3 attempts",
			Status:      entity.EscalationStatusOpen,
		},
		{
			TenantID: tenantIDs[4], Type: entity.EscalationThreatening,
			Priority:    entity.EscalationPrioritySameDay,
			Description: "AI detected threatening language: 'I'm going to sue you people'",
			Status:      entity.EscalationStatusOpen,
		},
	}
	for _, e := range escalations {
		if _, err := s.Escalations().Create(e); err != nil {
			return err
		}
	}

	return nil
}

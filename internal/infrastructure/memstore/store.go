// Package memstore implementa el Entity Store en memoria del tablero de
// cobranza: cuatro colecciones (Tenant, Conversation, PaymentPlan,
// Escalation) con create/read/update. No existe eliminación de registros.
package memstore

import (
	"time"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// Store agrupa las cuatro colecciones. Se construye en el arranque del
// proceso y se inyecta a los casos de uso; los tests crean instancias
// frescas para aislarse entre sí.
type Store struct {
	now func() time.Time

	tenants       *collection[entity.Tenant]
	conversations *collection[entity.Conversation]
	plans         *collection[entity.PaymentPlan]
	escalations   *collection[entity.Escalation]
}

// Option ajusta la construcción del Store.
type Option func(*Store)

// WithClock reemplaza la fuente de tiempo (para tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New crea un Store vacío.
func New(opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		tenants:       newCollection((*entity.Tenant).Clone),
		conversations: newCollection((*entity.Conversation).Clone),
		plans:         newCollection((*entity.PaymentPlan).Clone),
		escalations:   newCollection((*entity.Escalation).Clone),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tenants devuelve el repositorio de Tenant.
func (s *Store) Tenants() *TenantStore { return &TenantStore{s} }

// Conversations devuelve el repositorio de Conversation.
func (s *Store) Conversations() *ConversationStore { return &ConversationStore{s} }

// PaymentPlans devuelve el repositorio de PaymentPlan.
func (s *Store) PaymentPlans() *PaymentPlanStore { return &PaymentPlanStore{s} }

// Escalations devuelve el repositorio de Escalation.
func (s *Store) Escalations() *EscalationStore { return &EscalationStore{s} }

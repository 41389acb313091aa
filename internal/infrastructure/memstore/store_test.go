package memstore_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/infrastructure/memstore"
)

func nuevoTenant(name string) *entity.Tenant {
	return &entity.Tenant{
		Name:        name,
		Unit:        "Unit 1A",
		Property:    "Oak Village",
		Phone:       "(555) 000-0000",
		Language:    "English",
		AmountOwed:  decimal.RequireFromString("100.00"),
		DaysLate:    10,
		Reliability: 7,
		Priority:    entity.PriorityMedium,
		Status:      entity.TenantStatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantStore_CreateAsignaIDYCreatedAt(t *testing.T) {
	fixed := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	store := memstore.New(memstore.WithClock(func() time.Time { return fixed }))

	in := nuevoTenant("Maria Rodriguez")
	in.ID = "id-del-llamador" // debe descartarse
	created, err := store.Tenants().Create(in)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "id-del-llamador", created.ID)
	assert.Equal(t, fixed, created.CreatedAt)

	got, err := store.Tenants().GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Rodriguez", got.Name)
	assert.True(t, got.AmountOwed.Equal(decimal.RequireFromString("100.00")))
}

func TestTenantStore_GetByIDDesconocido(t *testing.T) {
	store := memstore.New()

	_, err := store.Tenants().GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List: orden de inserción estable
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantStore_ListConservaOrdenDeInsercion(t *testing.T) {
	store := memstore.New()
	names := []string{"Ana", "Bruno", "Carla", "Diego"}
	for _, n := range names {
		_, err := store.Tenants().Create(nuevoTenant(n))
		require.NoError(t, err)
	}

	list, err := store.Tenants().List()
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, n := range names {
		assert.Equal(t, n, list[i].Name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clones: el llamador nunca comparte estado mutable con el store
// ──────────────────────────────────────────────────────────────────────────────

func TestConversationStore_LasLecturasDevuelvenClones(t *testing.T) {
	store := memstore.New()
	created, err := store.Conversations().Create(&entity.Conversation{
		TenantID: "t-1",
		Status:   entity.ConversationStatusActive,
		Messages: []entity.Message{
			{Sender: entity.SenderAI, Content: "borrador", Timestamp: time.Now(), NeedsApproval: true},
		},
	})
	require.NoError(t, err)

	// Mutar lo devuelto no debe afectar al registro guardado.
	created.Messages[0].NeedsApproval = false
	created.Status = entity.ConversationStatusCompleted

	got, err := store.Conversations().GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, got.Messages[0].NeedsApproval)
	assert.Equal(t, entity.ConversationStatusActive, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: read-modify-write atómico con mutador
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantStore_UpdateIDDesconocidoNoInserta(t *testing.T) {
	store := memstore.New()

	_, err := store.Tenants().Update("fantasma", func(t *entity.Tenant) error {
		t.Name = "no debería existir"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := store.Tenants().List()
	require.NoError(t, err)
	assert.Empty(t, list, "un update fallido no debe insertar registros")
}

func TestTenantStore_UpdateConErrorNoPublicaCambios(t *testing.T) {
	store := memstore.New()
	created, err := store.Tenants().Create(nuevoTenant("Ana"))
	require.NoError(t, err)

	_, err = store.Tenants().Update(created.ID, func(t *entity.Tenant) error {
		t.Name = "mutación a medias"
		return domain.ErrInvalidInput
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := store.Tenants().GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name, "si el mutador falla el registro queda intacto")
}

func TestTenantStore_UpdatesConcurrentesSinPerdidas(t *testing.T) {
	store := memstore.New()
	created, err := store.Tenants().Create(nuevoTenant("Ana"))
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = store.Tenants().Update(created.ID, func(t *entity.Tenant) error {
				t.DaysLate++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := store.Tenants().GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10+n, got.DaysLate, "cada incremento debe observar el anterior")
}

// ──────────────────────────────────────────────────────────────────────────────
// ConversationStore: detalles de creación y direccionamiento por mensaje
// ──────────────────────────────────────────────────────────────────────────────

func TestConversationStore_CreateAsignaIDsDeMensajes(t *testing.T) {
	store := memstore.New()
	ts := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	created, err := store.Conversations().Create(&entity.Conversation{
		TenantID: "t-1",
		Status:   entity.ConversationStatusActive,
		Messages: []entity.Message{
			{Sender: entity.SenderAI, Content: "hola", Timestamp: ts.Add(-time.Hour)},
			{Sender: entity.SenderTenant, Content: "hola!", Timestamp: ts},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Messages, 2)
	assert.NotEmpty(t, created.Messages[0].ID)
	assert.NotEmpty(t, created.Messages[1].ID)
	assert.NotEqual(t, created.Messages[0].ID, created.Messages[1].ID)
	// LastMessageAt se deriva del último mensaje cuando no viene asignado.
	assert.Equal(t, ts, created.LastMessageAt)
}

func TestConversationStore_SetMessageApprovalDireccionaUnSoloMensaje(t *testing.T) {
	store := memstore.New()
	created, err := store.Conversations().Create(&entity.Conversation{
		TenantID: "t-1",
		Status:   entity.ConversationStatusActive,
		Messages: []entity.Message{
			{Sender: entity.SenderAI, Content: "uno", Timestamp: time.Now(), NeedsApproval: true},
			{Sender: entity.SenderAI, Content: "dos", Timestamp: time.Now(), NeedsApproval: true},
		},
	})
	require.NoError(t, err)

	updated, err := store.Conversations().SetMessageApproval(created.ID, created.Messages[0].ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Messages[0].NeedsApproval)
	assert.True(t, updated.Messages[1].NeedsApproval, "los demás mensajes no se tocan")
}

func TestConversationStore_SetMessageApprovalMensajeDesconocido(t *testing.T) {
	store := memstore.New()
	created, err := store.Conversations().Create(&entity.Conversation{
		TenantID: "t-1",
		Status:   entity.ConversationStatusActive,
		Messages: []entity.Message{
			{Sender: entity.SenderAI, Content: "uno", Timestamp: time.Now(), NeedsApproval: true},
		},
	})
	require.NoError(t, err)

	_, err = store.Conversations().SetMessageApproval(created.ID, "msg-fantasma", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := store.Conversations().GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, got.Messages[0].NeedsApproval, "el fallo no debe publicar cambios parciales")
}

func TestConversationStore_ListByTenant(t *testing.T) {
	store := memstore.New()
	for _, tenantID := range []string{"t-1", "t-2", "t-1"} {
		_, err := store.Conversations().Create(&entity.Conversation{
			TenantID: tenantID,
			Status:   entity.ConversationStatusActive,
		})
		require.NoError(t, err)
	}

	list, err := store.Conversations().ListByTenant("t-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, c := range list {
		assert.Equal(t, "t-1", c.TenantID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// EscalationStore
// ──────────────────────────────────────────────────────────────────────────────

func TestEscalationStore_CreateDescartaResolvedAt(t *testing.T) {
	store := memstore.New()
	ya := time.Now()
	created, err := store.Escalations().Create(&entity.Escalation{
		TenantID:    "t-1",
		Type:        entity.EscalationPhoneFailed,
		Priority:    entity.EscalationPriorityImmediate,
		Description: "no contesta",
		Status:      entity.EscalationStatusOpen,
		ResolvedAt:  &ya, // el sello lo asigna el servidor al resolver
	})
	require.NoError(t, err)
	assert.Nil(t, created.ResolvedAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de demostración
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedDemoData_CargaElJuegoCompleto(t *testing.T) {
	store := memstore.New()
	require.NoError(t, store.SeedDemoData())

	tenants, err := store.Tenants().List()
	require.NoError(t, err)
	assert.Len(t, tenants, 5)

	conversations, err := store.Conversations().List()
	require.NoError(t, err)
	assert.Len(t, conversations, 3)

	plans, err := store.PaymentPlans().List()
	require.NoError(t, err)
	assert.Len(t, plans, 2)

	escalations, err := store.Escalations().List()
	require.NoError(t, err)
	assert.Len(t, escalations, 2)
	for _, e := range escalations {
		assert.Equal(t, entity.EscalationStatusOpen, e.Status)
	}

	// Dos de las tres conversaciones terminan en un borrador por aprobar.
	pendientes := 0
	for _, c := range conversations {
		if c.PendingApproval() {
			pendientes++
		}
	}
	assert.Equal(t, 2, pendientes)
}

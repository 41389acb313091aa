package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/triage"
	"github.com/tu-usuario/cobranzas-pro/internal/infrastructure/memstore"
)

func nuevoConversationUC(s *memstore.Store) *usecase.ConversationUseCase {
	return usecase.NewConversationUseCase(s.Conversations(), testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve: limpia todos los flags, no toca nada más
// ──────────────────────────────────────────────────────────────────────────────

func TestConversationApprove_LimpiaTodosLosFlags(t *testing.T) {
	store := memstore.New()
	created, err := conversacionConBorradores(store, "t-1", intPtr(85), 5, 2, 4)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	out, err := uc.Approve(created.ID)
	require.NoError(t, err)

	for _, m := range out.Messages {
		assert.False(t, m.NeedsApproval)
	}
	// El estado y el contenido quedan exactamente como estaban.
	assert.Equal(t, entity.ConversationStatusActive, out.Status)
	require.Len(t, out.Messages, 5)
	for i, m := range out.Messages {
		assert.Equal(t, created.Messages[i].ID, m.ID)
		assert.Equal(t, created.Messages[i].Content, m.Content)
	}
}

func TestConversationApprove_EsIdempotente(t *testing.T) {
	store := memstore.New()
	created, err := conversacionConBorradores(store, "t-1", intPtr(85), 3, 1)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	first, err := uc.Approve(created.ID)
	require.NoError(t, err)
	second, err := uc.Approve(created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConversationApprove_IDDesconocido(t *testing.T) {
	uc := nuevoConversationUC(memstore.New())

	_, err := uc.Approve("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reject: escala sin tocar los flags; el escalamiento no se revierte
// ──────────────────────────────────────────────────────────────────────────────

func TestConversationReject_EscalaSinTocarFlags(t *testing.T) {
	store := memstore.New()
	created, err := conversacionConBorradores(store, "t-1", intPtr(72), 3, 2)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	out, err := uc.Reject(created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.ConversationStatusEscalated, out.Status)
	assert.True(t, out.Messages[2].NeedsApproval, "rechazar no limpia los flags")
}

func TestConversationReject_AprobarDespuesNoRevierteElEscalamiento(t *testing.T) {
	store := memstore.New()
	created, err := conversacionConBorradores(store, "t-1", intPtr(72), 3, 2)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	_, err = uc.Reject(created.ID)
	require.NoError(t, err)

	out, err := uc.Approve(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConversationStatusEscalated, out.Status)
	assert.False(t, out.Messages[2].NeedsApproval, "aprobar sí limpia los flags")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: PATCH con máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestConversationUpdate_EstadoTerminalRechazaSalidas(t *testing.T) {
	store := memstore.New()
	created, err := conversacionConBorradores(store, "t-1", intPtr(72), 1)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	_, err = uc.Update(created.ID, dto.UpdateConversationRequest{Status: strPtr(entity.ConversationStatusCompleted)})
	require.NoError(t, err)

	// completed es terminal: volver a active es conflicto, repetirlo es no-op.
	_, err = uc.Update(created.ID, dto.UpdateConversationRequest{Status: strPtr(entity.ConversationStatusActive)})
	assert.ErrorIs(t, err, domain.ErrConflict)

	out, err := uc.Update(created.ID, dto.UpdateConversationRequest{Status: strPtr(entity.ConversationStatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, entity.ConversationStatusCompleted, out.Status)
}

func TestConversationUpdate_ConfidenceFueraDeRango(t *testing.T) {
	store := memstore.New()
	created, err := conversacionConBorradores(store, "t-1", intPtr(72), 1)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	_, err = uc.Update(created.ID, dto.UpdateConversationRequest{Confidence: intPtr(101)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El update fallido no publica nada.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Confidence)
	assert.Equal(t, 72, *got.Confidence)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de certeza en las respuestas
// ──────────────────────────────────────────────────────────────────────────────

func TestConversationResponse_IncluyeConfidenceTier(t *testing.T) {
	store := memstore.New()
	created, err := conversacionConBorradores(store, "t-1", intPtr(92), 1)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, triage.TierAutoApprovable, out.ConfidenceTier)

	// Sin certeza registrada el nivel se omite.
	sin, err := conversacionConBorradores(store, "t-1", nil, 1)
	require.NoError(t, err)
	out, err = uc.GetByID(sin.ID)
	require.NoError(t, err)
	assert.Empty(t, out.ConfidenceTier)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprobación masiva: umbral 85 sobre conversaciones con pendientes
// ──────────────────────────────────────────────────────────────────────────────

func TestApproveAllEligible_SoloSobreElUmbral(t *testing.T) {
	store := memstore.New()

	// Elegible: certeza 85 y con borrador pendiente.
	elegible, err := conversacionConBorradores(store, "t-1", intPtr(85), 2, 1)
	require.NoError(t, err)
	// Bajo el umbral: certeza 84.
	bajoUmbral, err := conversacionConBorradores(store, "t-2", intPtr(84), 2, 1)
	require.NoError(t, err)
	// Sin pendientes: certeza alta pero nada que aprobar.
	_, err = conversacionConBorradores(store, "t-3", intPtr(95), 2)
	require.NoError(t, err)
	// Sin certeza registrada: nunca elegible.
	sinCerteza, err := conversacionConBorradores(store, "t-4", nil, 2, 1)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	out, err := uc.ApproveAllEligible()
	require.NoError(t, err)
	assert.Equal(t, 1, out.Approved)

	got, err := uc.GetByID(elegible.ID)
	require.NoError(t, err)
	assert.False(t, got.Messages[1].NeedsApproval)

	got, err = uc.GetByID(bajoUmbral.ID)
	require.NoError(t, err)
	assert.True(t, got.Messages[1].NeedsApproval)

	got, err = uc.GetByID(sinCerteza.ID)
	require.NoError(t, err)
	assert.True(t, got.Messages[1].NeedsApproval)
}

func TestApproveAllEligible_RepetirNoAprobaNadaNuevo(t *testing.T) {
	store := memstore.New()
	_, err := conversacionConBorradores(store, "t-1", intPtr(90), 2, 1)
	require.NoError(t, err)

	uc := nuevoConversationUC(store)
	first, err := uc.ApproveAllEligible()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Approved)

	second, err := uc.ApproveAllEligible()
	require.NoError(t, err)
	assert.Equal(t, 0, second.Approved)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestConversationCreate_ValidaRemitenteYContenido(t *testing.T) {
	uc := nuevoConversationUC(memstore.New())

	_, err := uc.Create(dto.CreateConversationRequest{
		TenantID: "t-1",
		Messages: []dto.NewMessageRequest{{Sender: "robot", Content: "hola"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateConversationRequest{
		TenantID: "t-1",
		Messages: []dto.NewMessageRequest{{Sender: entity.SenderAI, Content: ""}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateConversationRequest{TenantID: "", Messages: nil})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConversationCreate_ArrancaActiva(t *testing.T) {
	uc := nuevoConversationUC(memstore.New())

	out, err := uc.Create(dto.CreateConversationRequest{
		TenantID:   "t-1",
		Confidence: intPtr(88),
		Messages: []dto.NewMessageRequest{
			{Sender: entity.SenderAI, Content: "Hola, ¿podemos hablar de su saldo?", NeedsApproval: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ConversationStatusActive, out.Status)
	assert.NotEmpty(t, out.ID)
	require.Len(t, out.Messages, 1)
	assert.NotEmpty(t, out.Messages[0].ID)
	assert.True(t, out.Messages[0].NeedsApproval)
	assert.Equal(t, triage.TierReview, out.ConfidenceTier)
}

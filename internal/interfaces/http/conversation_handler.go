package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// ConversationHandler maneja las peticiones HTTP para Conversation.
type ConversationHandler struct {
	uc *usecase.ConversationUseCase
}

// NewConversationHandler construye el handler.
func NewConversationHandler(uc *usecase.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{uc: uc}
}

// List godoc
// @Summary      Listar conversaciones
// @Tags         conversations
// @Produce      json
// @Success      200  {array}  dto.ConversationResponse
// @Router       /api/conversations [get]
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener conversación por ID
// @Tags         conversations
// @Produce      json
// @Param        id   path  string  true  "ID de la conversación"
// @Success      200  {object}  dto.ConversationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id} [get]
func (h *ConversationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.JSON(out)
}

// ListByTenant godoc
// @Summary      Listar conversaciones de un arrendatario
// @Tags         conversations
// @Produce      json
// @Param        tenantId  path  string  true  "ID del arrendatario"
// @Success      200  {array}  dto.ConversationResponse
// @Router       /api/conversations/tenant/{tenantId} [get]
func (h *ConversationHandler) ListByTenant(c *fiber.Ctx) error {
	out, err := h.uc.ListByTenant(utils.CopyString(c.Params("tenantId")))
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Abrir conversación
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConversationRequest  true  "Conversación inicial"
// @Success      201   {object}  dto.ConversationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/conversations [post]
func (h *ConversationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConversationRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de conversación (status/confidence)
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la conversación"
// @Param        body  body  dto.UpdateConversationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ConversationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/conversations/{id} [patch]
func (h *ConversationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConversationRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Update(utils.CopyString(c.Params("id")), in)
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar el borrador pendiente de la conversación
// @Tags         conversations
// @Produce      json
// @Param        id   path  string  true  "ID de la conversación"
// @Success      200  {object}  dto.ConversationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/approve [post]
func (h *ConversationHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar el borrador y escalar la conversación
// @Tags         conversations
// @Produce      json
// @Param        id   path  string  true  "ID de la conversación"
// @Success      200  {object}  dto.ConversationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conversations/{id}/reject [post]
func (h *ConversationHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.JSON(out)
}

// ApproveAll godoc
// @Summary      Aprobación masiva de borradores con certeza >= 85
// @Tags         conversations
// @Produce      json
// @Success      200  {object}  dto.BulkApproveResponse
// @Router       /api/conversations/approve-all [post]
func (h *ConversationHandler) ApproveAll(c *fiber.Ctx) error {
	out, err := h.uc.ApproveAllEligible()
	if err != nil {
		return respondError(c, err, "Conversation not found")
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// EscalationHandler maneja las peticiones HTTP para Escalation.
type EscalationHandler struct {
	uc *usecase.EscalationUseCase
}

// NewEscalationHandler construye el handler.
func NewEscalationHandler(uc *usecase.EscalationUseCase) *EscalationHandler {
	return &EscalationHandler{uc: uc}
}

// List godoc
// @Summary      Listar escalamientos
// @Tags         escalations
// @Produce      json
// @Success      200  {array}  dto.EscalationResponse
// @Router       /api/escalations [get]
func (h *EscalationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err, "Escalation not found")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener escalamiento por ID
// @Tags         escalations
// @Produce      json
// @Param        id   path  string  true  "ID del escalamiento"
// @Success      200  {object}  dto.EscalationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/escalations/{id} [get]
func (h *EscalationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Escalation not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Abrir escalamiento
// @Tags         escalations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEscalationRequest  true  "Escalamiento"
// @Success      201   {object}  dto.EscalationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/escalations [post]
func (h *EscalationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEscalationRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, "Escalation not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de escalamiento
// @Tags         escalations
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del escalamiento"
// @Param        body  body  dto.UpdateEscalationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EscalationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/escalations/{id} [patch]
func (h *EscalationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEscalationRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Update(utils.CopyString(c.Params("id")), in)
	if err != nil {
		return respondError(c, err, "Escalation not found")
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver escalamiento
// @Tags         escalations
// @Produce      json
// @Param        id   path  string  true  "ID del escalamiento"
// @Success      200  {object}  dto.EscalationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/escalations/{id}/resolve [post]
func (h *EscalationHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Escalation not found")
	}
	return c.JSON(out)
}

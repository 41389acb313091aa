package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// PaymentPlanHandler maneja las peticiones HTTP para PaymentPlan.
type PaymentPlanHandler struct {
	uc *usecase.PaymentPlanUseCase
}

// NewPaymentPlanHandler construye el handler.
func NewPaymentPlanHandler(uc *usecase.PaymentPlanUseCase) *PaymentPlanHandler {
	return &PaymentPlanHandler{uc: uc}
}

// List godoc
// @Summary      Listar planes de pago
// @Tags         payment-plans
// @Produce      json
// @Success      200  {array}  dto.PaymentPlanResponse
// @Router       /api/payment-plans [get]
func (h *PaymentPlanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err, "Payment plan not found")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plan por ID
// @Tags         payment-plans
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.PaymentPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-plans/{id} [get]
func (h *PaymentPlanHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Payment plan not found")
	}
	return c.JSON(out)
}

// ListByTenant godoc
// @Summary      Listar planes de un arrendatario
// @Tags         payment-plans
// @Produce      json
// @Param        tenantId  path  string  true  "ID del arrendatario"
// @Success      200  {array}  dto.PaymentPlanResponse
// @Router       /api/payment-plans/tenant/{tenantId} [get]
func (h *PaymentPlanHandler) ListByTenant(c *fiber.Ctx) error {
	out, err := h.uc.ListByTenant(utils.CopyString(c.Params("tenantId")))
	if err != nil {
		return respondError(c, err, "Payment plan not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar plan propuesto
// @Tags         payment-plans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentPlanRequest  true  "Plan propuesto"
// @Success      201   {object}  dto.PaymentPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment-plans [post]
func (h *PaymentPlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentPlanRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, "Payment plan not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de plan
// @Tags         payment-plans
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del plan"
// @Param        body  body  dto.UpdatePaymentPlanRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PaymentPlanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payment-plans/{id} [patch]
func (h *PaymentPlanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentPlanRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Update(utils.CopyString(c.Params("id")), in)
	if err != nil {
		return respondError(c, err, "Payment plan not found")
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar plan propuesto
// @Tags         payment-plans
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.PaymentPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payment-plans/{id}/approve [post]
func (h *PaymentPlanHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Payment plan not found")
	}
	return c.JSON(out)
}

// Deny godoc
// @Summary      Denegar plan propuesto
// @Tags         payment-plans
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.PaymentPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payment-plans/{id}/deny [post]
func (h *PaymentPlanHandler) Deny(c *fiber.Ctx) error {
	out, err := h.uc.Deny(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Payment plan not found")
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// TenantHandler maneja las peticiones HTTP para Tenant.
type TenantHandler struct {
	uc *usecase.TenantUseCase
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *usecase.TenantUseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// List godoc
// @Summary      Listar arrendatarios
// @Tags         tenants
// @Produce      json
// @Success      200  {array}  dto.TenantResponse
// @Router       /api/tenants [get]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err, "Tenant not found")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener arrendatario por ID
// @Tags         tenants
// @Produce      json
// @Param        id   path  string  true  "ID del arrendatario"
// @Success      200  {object}  dto.TenantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(utils.CopyString(c.Params("id")))
	if err != nil {
		return respondError(c, err, "Tenant not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar arrendatario (intake)
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenantRequest  true  "Datos del arrendatario"
// @Success      201   {object}  dto.TenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tenants [post]
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, "Tenant not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de arrendatario
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del arrendatario"
// @Param        body  body  dto.UpdateTenantRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [patch]
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if err := decodeStrict(c, &in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	out, err := h.uc.Update(utils.CopyString(c.Params("id")), in)
	if err != nil {
		return respondError(c, err, "Tenant not found")
	}
	return c.JSON(out)
}

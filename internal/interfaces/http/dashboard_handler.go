package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      KPIs del tablero de cobranza
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
//
// Proyección recalculada en cada llamada sobre el snapshot del store.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Queue godoc
// @Summary      Cola de cobranza agrupada por prioridad
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.QueueSummaryDTO
// @Router       /api/dashboard/queue [get]
func (h *DashboardHandler) Queue(c *fiber.Ctx) error {
	out, err := h.uc.QueueSummary()
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

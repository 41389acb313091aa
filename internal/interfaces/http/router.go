package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TenantUC       *usecase.TenantUseCase
	ConversationUC *usecase.ConversationUseCase
	PaymentPlanUC  *usecase.PaymentPlanUseCase
	EscalationUC   *usecase.EscalationUseCase
	DashboardUC    *usecase.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tenants
	tenants := api.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Get("/", tenantHandler.List)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Patch("/:id", tenantHandler.Update)

	// Conversations. La ruta estática approve-all se registra antes que
	// las rutas con :id para que fiber no la capture como parámetro.
	conversations := api.Group("/conversations")
	conversationHandler := NewConversationHandler(deps.ConversationUC)
	conversations.Get("/", conversationHandler.List)
	conversations.Post("/", conversationHandler.Create)
	conversations.Post("/approve-all", conversationHandler.ApproveAll)
	conversations.Get("/tenant/:tenantId", conversationHandler.ListByTenant)
	conversations.Get("/:id", conversationHandler.GetByID)
	conversations.Patch("/:id", conversationHandler.Update)
	conversations.Post("/:id/approve", conversationHandler.Approve)
	conversations.Post("/:id/reject", conversationHandler.Reject)

	// Payment plans
	plans := api.Group("/payment-plans")
	planHandler := NewPaymentPlanHandler(deps.PaymentPlanUC)
	plans.Get("/", planHandler.List)
	plans.Post("/", planHandler.Create)
	plans.Get("/tenant/:tenantId", planHandler.ListByTenant)
	plans.Get("/:id", planHandler.GetByID)
	plans.Patch("/:id", planHandler.Update)
	plans.Post("/:id/approve", planHandler.Approve)
	plans.Post("/:id/deny", planHandler.Deny)

	// Escalations
	escalations := api.Group("/escalations")
	escalationHandler := NewEscalationHandler(deps.EscalationUC)
	escalations.Get("/", escalationHandler.List)
	escalations.Post("/", escalationHandler.Create)
	escalations.Get("/:id", escalationHandler.GetByID)
	escalations.Patch("/:id", escalationHandler.Update)
	escalations.Post("/:id/resolve", escalationHandler.Resolve)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/queue", dashboardHandler.Queue)
}

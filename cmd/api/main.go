package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
	"github.com/tu-usuario/cobranzas-pro/internal/infrastructure/memstore"
	httpRouter "github.com/tu-usuario/cobranzas-pro/internal/interfaces/http"
	"github.com/tu-usuario/cobranzas-pro/pkg/config"
	"github.com/tu-usuario/cobranzas-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Entity Store en memoria: dueño único por proceso, inyectado a todos
	// los casos de uso. Sin rutas de eliminación.
	store := memstore.New()
	if cfg.Seed.DemoData {
		if err := store.SeedDemoData(); err != nil {
			log.Fatal().Err(err).Msg("carga de datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	tenantUC := usecase.NewTenantUseCase(store.Tenants())
	conversationUC := usecase.NewConversationUseCase(store.Conversations(), log)
	planUC := usecase.NewPaymentPlanUseCase(store.PaymentPlans(), store.Tenants(), log)
	escalationUC := usecase.NewEscalationUseCase(store.Escalations(), log)
	dashboardUC := usecase.NewDashboardUseCase(store.Tenants(), store.Conversations(), store.Escalations())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cobranzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TenantUC:       tenantUC,
		ConversationUC: conversationUC,
		PaymentPlanUC:  planUC,
		EscalationUC:   escalationUC,
		DashboardUC:    dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

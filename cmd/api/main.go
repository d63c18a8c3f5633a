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
	"github.com/gracetone/gracetone-connect/internal/application/auth"
	"github.com/gracetone/gracetone-connect/internal/application/ports"
	"github.com/gracetone/gracetone-connect/internal/application/usecase"
	infraai "github.com/gracetone/gracetone-connect/internal/infrastructure/ai"
	infrapdf "github.com/gracetone/gracetone-connect/internal/infrastructure/pdf"
	"github.com/gracetone/gracetone-connect/internal/infrastructure/postgres"
	httpRouter "github.com/gracetone/gracetone-connect/internal/interfaces/http"
	"github.com/gracetone/gracetone-connect/internal/realtime"
	"github.com/gracetone/gracetone-connect/pkg/config"
	"github.com/gracetone/gracetone-connect/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	errorReportRepo := postgres.NewErrorReportRepository(pool)

	hub := realtime.NewHub()
	reporter := usecase.NewErrorReporter(errorReportRepo, log)

	authUC := auth.NewAuthUseCase(profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Studio.AdminEmail)
	profileUC := usecase.NewProfileUseCase(profileRepo, reporter)
	orderUC := usecase.NewOrderUseCase(orderRepo, hub)

	// Provedor LLM por configuração; os dois adaptadores expõem a mesma porta.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(infraai.AnthropicConfig{
			APIKey: cfg.AI.AnthropicAPIKey,
			Model:  cfg.AI.AnthropicModel,
		})
	default:
		llm = infraai.NewGeminiService(infraai.GeminiConfig{
			APIKey: cfg.AI.GeminiAPIKey,
			Model:  cfg.AI.GeminiModel,
		})
	}
	aiUC := usecase.NewAIUseCase(llm, usecase.AIConfig{
		Timeout:    time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		BioEnabled: cfg.AI.BioEnabled,
	}, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(errorReportRepo, orderRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GraceTone Connect API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProfileUC: profileUC,
		OrderUC:   orderUC,
		AIUC:      aiUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gracetone/gracetone-connect/internal/application/auth"
	"github.com/gracetone/gracetone-connect/internal/application/usecase"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProfileUC *usecase.ProfileUseCase
	OrderUC   *usecase.OrderUseCase
	AIUC      *usecase.AIUseCase
	ReportUC  *usecase.ReportUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra as rotas da API. O gating por papel acontece aqui, na
// camada de dados; o redirecionamento equivalente na UI é só conveniência.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	client := protected.Group("/", RequireRole(entity.RoleClient))
	staff := protected.Group("/", RequireRole(entity.RoleStaff))
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))

	// Perfil (cliente autenticado)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	client.Get("/profile", profileHandler.Get)
	client.Put("/profile", profileHandler.Update)

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Log)
	client.Post("/orders", orderHandler.Create)
	client.Get("/orders/mine", orderHandler.ListMine)
	staff.Get("/orders", orderHandler.List)
	staff.Get("/orders/stream", orderHandler.Stream)
	staff.Patch("/orders/:id/status", orderHandler.UpdateStatus)
	staff.Post("/orders/:id/archive", orderHandler.Archive)

	// IA
	aiHandler := NewAIHandler(deps.AIUC)
	client.Post("/ai/generate-bio", aiHandler.GenerateBio)
	staff.Post("/ai/summarize-order", aiHandler.SummarizeOrder)

	// Admin
	adminHandler := NewAdminHandler(deps.ProfileUC, deps.ReportUC)
	admin.Put("/admin/users/:uid/role", adminHandler.UpdateRole)
	admin.Get("/admin/error-reports", adminHandler.ListErrorReports)
	staff.Get("/admin/reports/orders.pdf", adminHandler.OrdersReportPDF)
}

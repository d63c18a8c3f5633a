package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/application/usecase"
	"github.com/gracetone/gracetone-connect/internal/domain"
)

// AdminHandler visões administrativas: troca de papel, relatórios de erro
// e exportação da lista de pedidos em PDF.
type AdminHandler struct {
	profiles *usecase.ProfileUseCase
	reports  *usecase.ReportUseCase
}

// NewAdminHandler constrói o handler de admin.
func NewAdminHandler(profiles *usecase.ProfileUseCase, reports *usecase.ReportUseCase) *AdminHandler {
	return &AdminHandler{profiles: profiles, reports: reports}
}

// UpdateRole godoc
// @Summary      Trocar o papel de um perfil (apenas admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "uid do perfil"
// @Param        body  body  dto.UpdateRoleRequest  true  "client | staff | admin"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{uid}/role [put]
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.profiles.UpdateRole(c.Context(), c.Params("uid"), in.Role); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "papel desconhecido"})
		}
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PROFILE_NOT_FOUND", Message: "perfil não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao trocar o papel"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListErrorReports godoc
// @Summary      Relatórios de erro (apenas admin), mais recentes primeiro
// @Tags         admin
// @Produce      json
// @Param        limit   query  int  false  "tamanho da página"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {array}  dto.ErrorReportResponse
// @Router       /api/admin/error-reports [get]
func (h *AdminHandler) ListErrorReports(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	reports, err := h.reports.ListErrorReports(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao listar relatórios"})
	}
	return c.JSON(reports)
}

// OrdersReportPDF godoc
// @Summary      Relatório de pedidos em PDF (staff/admin)
// @Tags         admin
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/admin/reports/orders.pdf [get]
func (h *AdminHandler) OrdersReportPDF(c *fiber.Ctx) error {
	doc, err := h.reports.OrdersReportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao gerar o relatório"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedidos.pdf"`)
	return c.Send(doc)
}

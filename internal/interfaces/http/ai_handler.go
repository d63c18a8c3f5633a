package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/application/usecase"
	"github.com/gracetone/gracetone-connect/internal/domain"
)

// AIHandler os dois auxiliares de texto assistidos por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler constrói o handler de IA.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateBio godoc
// @Summary      Gerar biografia de artista (máx. 280 caracteres, primeira pessoa)
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateBioRequest  true  "artistName, preferredStyle, preferredRhythm"
// @Success      200   {object}  dto.GenerateBioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/generate-bio [post]
func (h *AIHandler) GenerateBio(c *fiber.Ctx) error {
	var in dto.GenerateBioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.GenerateBio(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrBioDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BIO_DISABLED", Message: "a geração de biografia está desativada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "artistName é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao gerar a biografia"})
	}
	return c.JSON(out)
}

// SummarizeOrder godoc
// @Summary      Resumo operacional de um pedido para a equipe de produção
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SummarizeOrderRequest  true  "campos estruturados do pedido"
// @Success      200   {object}  dto.SummarizeOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/summarize-order [post]
func (h *AIHandler) SummarizeOrder(c *fiber.Ctx) error {
	var in dto.SummarizeOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SummarizeOrder(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "artist é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao gerar o resumo"})
	}
	return c.JSON(out)
}

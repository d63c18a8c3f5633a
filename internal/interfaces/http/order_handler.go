package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/application/usecase"
	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/pkg/logger"
)

// Intervalo do comentário keep-alive no stream SSE; também é o que permite
// detectar desconexão do cliente quando não há mudanças a publicar.
const streamHeartbeat = 15 * time.Second

// OrderHandler submissão, listagem, transições de estado e stream de pedidos.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler constrói o handler de pedidos.
func NewOrderHandler(uc *usecase.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Submeter um novo pedido de produção
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "dados do formulário de pedido"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, fields, err := h.uc.Submit(c.Context(), GetUID(c), in)
	if err != nil {
		h.log.Error().Err(err).Msg("falha ao persistir pedido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "não foi possível enviar o pedido, tente novamente"})
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos", Fields: fields})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos (staff/admin), mais recentes primeiro
// @Tags         orders
// @Produce      json
// @Param        active  query  bool  false  "filtrar apenas pedidos não arquivados"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	onlyActive := c.QueryBool("active", false)
	orders, err := h.uc.List(c.Context(), onlyActive)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao listar pedidos"})
	}
	return c.JSON(orders)
}

// ListMine godoc
// @Summary      Listar os pedidos da própria identidade
// @Tags         orders
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders/mine [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	orders, err := h.uc.ListMine(c.Context(), GetUID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao listar pedidos"})
	}
	return c.JSON(orders)
}

// UpdateStatus godoc
// @Summary      Avançar o estado de um pedido (staff/admin)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "novo status"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	return h.transition(c, in.Status)
}

// Archive godoc
// @Summary      Arquivar um pedido (soft delete terminal, idempotente)
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "id do pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/archive [post]
func (h *OrderHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.Archive(c.Context(), c.Params("id")); err != nil {
		return h.transitionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OrderHandler) transition(c *fiber.Ctx, status string) error {
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), status); err != nil {
		return h.transitionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OrderHandler) transitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "status desconhecido"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STATUS_CONFLICT", Message: "o estado do pedido só avança, nunca regride"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao atualizar o pedido"})
	}
}

// Stream godoc
// @Summary      Stream SSE da lista de pedidos (staff/admin)
// @Description  Envia um snapshot completo na conexão e um por mutação confirmada.
// @Tags         orders
// @Produce      text/event-stream
// @Router       /api/orders/stream [get]
func (h *OrderHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	sub := h.uc.Hub().Subscribe()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// Ao sair (desconexão ou erro de escrita), a assinatura é liberada
		// imediatamente: nenhum listener órfão sobrevive à visão.
		defer sub.Unsubscribe()

		if err := h.writeSnapshot(w); err != nil {
			return
		}

		ticker := time.NewTicker(streamHeartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-sub.C:
				if err := h.writeSnapshot(w); err != nil {
					return
				}
			case <-ticker.C:
				// Comentário SSE: mantém a conexão viva e faz a escrita
				// falhar cedo se o cliente já se foi.
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

// writeSnapshot relê a lista completa e envia um evento snapshot.
// O consumidor substitui sua lista em memória, nunca reconcilia diffs.
func (h *OrderHandler) writeSnapshot(w *bufio.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := h.uc.List(ctx, false)
	if err != nil {
		h.log.Error().Err(err).Msg("falha ao montar snapshot de pedidos")
		return err
	}
	payload, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	if _, err := w.WriteString("event: snapshot\ndata: " + string(payload) + "\n\n"); err != nil {
		return err
	}
	return w.Flush()
}

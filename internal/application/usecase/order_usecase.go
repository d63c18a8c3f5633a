package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
	"github.com/gracetone/gracetone-connect/internal/realtime"
)

// OrderUseCase ciclo de vida dos pedidos: submissão validada pelo cliente,
// listagem viva para staff/admin e transições monotônicas de estado.
type OrderUseCase struct {
	orders repository.OrderRepository
	hub    *realtime.Hub
}

// NewOrderUseCase constrói o caso de uso de pedidos.
func NewOrderUseCase(orders repository.OrderRepository, hub *realtime.Hub) *OrderUseCase {
	return &OrderUseCase{orders: orders, hub: hub}
}

// Submit valida e persiste um novo pedido ligado à identidade autenticada.
// Qualquer violação devolve os erros campo a campo sem nenhuma escrita
// (tudo ou nada). Sucesso: status "Novo", timestamp do servidor, aviso ao hub.
func (uc *OrderUseCase) Submit(ctx context.Context, uid string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, map[string]string, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, fields, nil
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		Artist:      strings.TrimSpace(in.Artist),
		Contact:     strings.TrimSpace(in.Contact),
		ServiceType: in.ServiceType,
		Style:       strings.TrimSpace(in.Style),
		Rhythm:      strings.TrimSpace(in.Rhythm),
		Objective:   in.Objective,
		Description: strings.TrimSpace(in.Description),
		Status:      entity.StatusNovo,
		UserID:      uid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		// Falha de persistência: erro genérico, sem retry automático.
		// A recuperação é o usuário reenviar o formulário.
		return nil, nil, err
	}
	uc.hub.Publish()
	return &dto.CreateOrderResponse{ID: order.ID, Status: order.Status}, nil, nil
}

// List devolve os pedidos por data de criação descendente.
// onlyActive=true aplica o filtro derivado status != Arquivado.
func (uc *OrderUseCase) List(ctx context.Context, onlyActive bool) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListMine devolve os pedidos da própria identidade (portal do cliente).
func (uc *OrderUseCase) ListMine(ctx context.Context, uid string) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// UpdateStatus avança o estado de um pedido. O estado só anda para a frente:
// regressão devolve ErrConflict; regravar o mesmo estado é no-op de sucesso
// (é isso que torna o arquivamento idempotente sob last-write-wins).
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	newRank, ok := entity.StatusRank(status)
	if !ok {
		return domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrOrderNotFound
	}
	curRank, _ := entity.StatusRank(order.Status)
	if newRank == curRank {
		return nil // já está no estado pedido
	}
	if newRank < curRank {
		return domain.ErrConflict
	}
	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	uc.hub.Publish()
	return nil
}

// Archive soft delete terminal: o pedido sai da visão ativa mas o registro
// permanece para histórico/auditoria. Idempotente.
func (uc *OrderUseCase) Archive(ctx context.Context, id string) error {
	return uc.UpdateStatus(ctx, id, entity.StatusArquivado)
}

// Hub expõe o hub para a camada HTTP assinar o stream de snapshots.
func (uc *OrderUseCase) Hub() *realtime.Hub {
	return uc.hub
}

func toOrderResponses(orders []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToOrderResponse(o))
	}
	return out
}

package repository

import (
	"context"

	"github.com/gracetone/gracetone-connect/internal/domain/entity"
)

// OrderRepository porta de persistência de pedidos.
// Listagens vêm ordenadas por data de criação descendente.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// List devolve todos os pedidos; com onlyActive=true filtra status != Arquivado.
	// A visão ativa é derivada na consulta, nunca materializada.
	List(ctx context.Context, onlyActive bool) ([]*entity.Order, error)
	ListByUser(ctx context.Context, uid string) ([]*entity.Order, error)
	// UpdateStatus grava apenas o status; a checagem de monotonicidade fica no use case.
	UpdateStatus(ctx context.Context, id, status string) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação da porta OrderRepository sobre PostgreSQL.
// Pedidos nunca são apagados: o arquivamento é só uma transição de status.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository constrói o adaptador de persistência de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, artist, contact, service_type, style, rhythm, objective, description, status, user_id, created_at, updated_at`

// Create persiste um novo pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		o.ID, o.Artist, o.Contact, o.ServiceType, o.Style, o.Rhythm,
		o.Objective, o.Description, o.Status, o.UserID, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por id; (nil, nil) se não existir.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.Artist, &o.Contact, &o.ServiceType, &o.Style, &o.Rhythm,
		&o.Objective, &o.Description, &o.Status, &o.UserID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}

// List devolve os pedidos por data de criação descendente.
// onlyActive=true aplica o filtro derivado status != 'Arquivado'.
func (r *OrderRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	if onlyActive {
		query += ` WHERE status <> '` + entity.StatusArquivado + `'`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryList(ctx, query)
}

// ListByUser devolve os pedidos de uma identidade, mais recentes primeiro.
func (r *OrderRepo) ListByUser(ctx context.Context, uid string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, uid)
}

func (r *OrderRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.Artist, &o.Contact, &o.ServiceType, &o.Style, &o.Rhythm,
			&o.Objective, &o.Description, &o.Status, &o.UserID, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus grava apenas o status. created_at nunca muda.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.ErrorReportRepository = (*ErrorReportRepo)(nil)

// ErrorReportRepo implementação da porta ErrorReportRepository sobre PostgreSQL.
// A tabela error_reports é append-only: só INSERT e SELECT.
type ErrorReportRepo struct {
	pool *pgxpool.Pool
}

// NewErrorReportRepository constrói o adaptador de persistência dos relatórios de erro.
func NewErrorReportRepository(pool *pgxpool.Pool) *ErrorReportRepo {
	return &ErrorReportRepo{pool: pool}
}

// Create grava um relatório de erro.
func (r *ErrorReportRepo) Create(ctx context.Context, report *entity.ErrorReport) error {
	query := `
		INSERT INTO error_reports (id, component, error_message, error_stack, user_id, user_email, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		report.ID, report.Component, report.ErrorMessage, report.ErrorStack,
		report.UserID, report.UserEmail, report.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert error report: %w", err)
	}
	return nil
}

// List devolve relatórios por timestamp descendente, com paginação.
func (r *ErrorReportRepo) List(ctx context.Context, limit, offset int) ([]*entity.ErrorReport, error) {
	query := `
		SELECT id, component, error_message, error_stack, user_id, user_email, timestamp
		FROM error_reports ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list error reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.ErrorReport
	for rows.Next() {
		var report entity.ErrorReport
		if err := rows.Scan(
			&report.ID, &report.Component, &report.ErrorMessage, &report.ErrorStack,
			&report.UserID, &report.UserEmail, &report.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan error report: %w", err)
		}
		list = append(list, &report)
	}
	return list, rows.Err()
}

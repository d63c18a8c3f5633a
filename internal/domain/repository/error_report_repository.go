package repository

import (
	"context"

	"github.com/gracetone/gracetone-connect/internal/domain/entity"
)

// ErrorReportRepository porta de persistência dos relatórios de erro (append-only).
type ErrorReportRepository interface {
	Create(ctx context.Context, r *entity.ErrorReport) error
	// List devolve relatórios ordenados por timestamp descendente, com paginação.
	List(ctx context.Context, limit, offset int) ([]*entity.ErrorReport, error)
}

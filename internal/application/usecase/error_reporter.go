package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
	"github.com/gracetone/gracetone-connect/pkg/logger"
)

// ErrorReporter grava relatórios de erro diagnósticos na coleção append-only.
// A gravação é best-effort: se o próprio relatório falhar, apenas loga.
// Nunca tenta de novo, para não entrar em loop de falhas recursivas.
type ErrorReporter struct {
	reports repository.ErrorReportRepository
	log     *logger.Logger
}

// NewErrorReporter constrói o reporter.
func NewErrorReporter(reports repository.ErrorReportRepository, log *logger.Logger) *ErrorReporter {
	return &ErrorReporter{reports: reports, log: log}
}

// Report registra uma falha com o componente de origem e a identidade, se houver.
func (r *ErrorReporter) Report(ctx context.Context, component, message, stack, userID, userEmail string) {
	report := &entity.ErrorReport{
		ID:           uuid.New().String(),
		Component:    component,
		ErrorMessage: message,
		ErrorStack:   stack,
		UserID:       userID,
		UserEmail:    userEmail,
		Timestamp:    time.Now(),
	}
	if err := r.reports.Create(ctx, report); err != nil {
		r.log.Error().Err(err).
			Str("component", component).
			Str("original_error", message).
			Msg("falha ao gravar relatório de erro")
	}
}

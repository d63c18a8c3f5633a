package usecase

import (
	"context"

	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
)

// OrdersPDFGenerator porta de saída para a geração do relatório de pedidos em PDF.
type OrdersPDFGenerator interface {
	GenerateOrdersReport(ctx context.Context, orders []*entity.Order) ([]byte, error)
}

// ReportUseCase visões de diagnóstico e operação: relatórios de erro
// (somente admin) e exportação da lista de pedidos em PDF.
type ReportUseCase struct {
	reports repository.ErrorReportRepository
	orders  repository.OrderRepository
	pdf     OrdersPDFGenerator
}

// NewReportUseCase constrói o caso de uso de relatórios.
func NewReportUseCase(reports repository.ErrorReportRepository, orders repository.OrderRepository, pdf OrdersPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reports: reports, orders: orders, pdf: pdf}
}

// ListErrorReports devolve os relatórios de erro por timestamp descendente.
func (uc *ReportUseCase) ListErrorReports(ctx context.Context, page dto.PageRequest) ([]dto.ErrorReportResponse, error) {
	page.DefaultPage()
	reports, err := uc.reports.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ErrorReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.ErrorReportResponse{
			ID:           r.ID,
			Component:    r.Component,
			ErrorMessage: r.ErrorMessage,
			ErrorStack:   r.ErrorStack,
			UserID:       r.UserID,
			UserEmail:    r.UserEmail,
			Timestamp:    r.Timestamp,
		})
	}
	return out, nil
}

// OrdersReportPDF gera o PDF com a lista completa de pedidos (inclui arquivados:
// o relatório é histórico, não a visão ativa).
func (uc *ReportUseCase) OrdersReportPDF(ctx context.Context) ([]byte, error) {
	orders, err := uc.orders.List(ctx, false)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateOrdersReport(ctx, orders)
}

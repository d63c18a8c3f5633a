// Package pdf implementa o relatório de pedidos do estúdio em PDF (Maroto v2).
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GraceTone / Relatório de Pedidos │ data de geração  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Artista | Serviço | Estilo | Objetivo | Status | Data │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de pedidos (ativos / arquivados)              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gracetone/gracetone-connect/internal/application/usecase"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 88, Green: 56, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Rótulos dos enums do formulário para exibição.
var serviceLabels = map[string]string{
	entity.ServiceCreation:     "Criação",
	entity.ServiceRecreation:   "Re-Criação",
	entity.ServiceInstrumental: "Instrumental",
	entity.ServiceProduction:   "Produção Completa",
}

var objectiveLabels = map[string]string{
	entity.ObjectivePersonal:   "Uso Pessoal",
	entity.ObjectiveChurch:     "Igreja / Ministério",
	entity.ObjectiveCommercial: "Comercial",
}

func label(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.OrdersPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.OrdersPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateOrdersReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateOrdersReport(_ context.Context, orders []*entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("GraceTone - Relatório de Pedidos", true).
		WithAuthor("GraceTone Connect", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, o := range orders {
		m.AddRows(orderRow(o))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(orders))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar PDF do relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("GraceTone - Relatório de Pedidos", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 8, Style: fontstyle.Bold, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(3, "Artista"),
		header(2, "Serviço"),
		header(2, "Estilo"),
		header(2, "Objetivo"),
		header(1, "Status"),
		header(2, "Data"),
	)
}

func orderRow(o *entity.Order) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(6).Add(
		cell(3, o.Artist),
		cell(2, label(serviceLabels, o.ServiceType)),
		cell(2, o.Style),
		cell(2, label(objectiveLabels, o.Objective)),
		cell(1, o.Status),
		cell(2, o.CreatedAt.Format("02/01/2006")),
	)
}

func footerRow(orders []*entity.Order) core.Row {
	active := 0
	for _, o := range orders {
		if o.Active() {
			active++
		}
	}
	summary := fmt.Sprintf("%d pedidos - %d ativos, %d arquivados", len(orders), active, len(orders)-active)
	return row.New(8).Add(
		col.New(12).Add(text.New(summary, props.Text{Size: 8, Color: colorGray})),
	)
}

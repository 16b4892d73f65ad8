// Package pdf implementa la representación PDF del reporte de movimientos de
// stock (ventana de días, conteo diario y top de productos por entradas y
// salidas) usando Maroto v2.
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/almacen-wms/internal/application/reports"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{}
}

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateMovementReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReportPDF(
	_ context.Context,
	report *reports.MovementReport,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("MOVIMIENTOS POR DÍA"))
	m.AddRows(dailyHeaderRow())
	for _, r := range dailyRows(report.Daily) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("TOP PRODUCTOS — ENTRADAS"))
	m.AddRows(topHeaderRow())
	for _, r := range topRows(report.TopIn) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("TOP PRODUCTOS — SALIDAS"))
	m.AddRows(topHeaderRow())
	for _, r := range topRows(report.TopOut) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y ventana del reporte (der).
func headerRow(report *reports.MovementReport) core.Row {
	ventana := fmt.Sprintf("%s — %s (%d días)",
		report.From.Format("02/01/2006"), report.To.Format("02/01/2006"), report.Days)
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Libro de movimientos de stock", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Ventana", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(ventana, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func dailyHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Día", 6, align.Left),
		headerCell("Movimientos", 6, align.Right),
	)
}

func dailyRows(daily []*repository.DailyMovementCount) []core.Row {
	result := make([]core.Row, 0, len(daily))
	for _, d := range daily {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(d.Day.Format("02/01/2006"), props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(fmt.Sprintf("%d", d.Count), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}

func topHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("SKU", 3, align.Left),
		headerCell("Producto", 6, align.Left),
		headerCell("Cantidad", 3, align.Right),
	)
}

func topRows(totals []*repository.ProductMovementTotal) []core.Row {
	result := make([]core.Row, 0, len(totals))
	for _, t := range totals {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(t.SKU, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(t.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(t.Total.String(), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
	}))
}

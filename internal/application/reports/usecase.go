package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// Ventana de los reportes de movimientos, en días.
const (
	defaultWindowDays = 7
	maxWindowDays     = 90
	topLimit          = 10
)

// MovementReport agregados del libro de movimientos en una ventana de días.
type MovementReport struct {
	From   time.Time
	To     time.Time
	Days   int
	Daily  []*repository.DailyMovementCount
	TopIn  []*repository.ProductMovementTotal
	TopOut []*repository.ProductMovementTotal
}

// ReportUseCase consultas de solo lectura sobre el libro y los saldos.
// No toca el motor: los reportes jamás escriben.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdf        PDFGenerator
	xml        XMLExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, pdf PDFGenerator, xml XMLExporter) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdf: pdf, xml: xml}
}

// clampDays acota la ventana a [1, 90]; cero o negativo usa el default.
func clampDays(days int) int {
	if days <= 0 {
		return defaultWindowDays
	}
	if days > maxWindowDays {
		return maxWindowDays
	}
	return days
}

// MovementReport arma el reporte de la ventana: conteo diario más el top-10
// de productos por cantidad movida, separado por entradas y salidas.
func (uc *ReportUseCase) MovementReport(days int) (*MovementReport, error) {
	days = clampDays(days)
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	daily, err := uc.reportRepo.DailyMovementCounts(from)
	if err != nil {
		return nil, fmt.Errorf("reporte: conteo diario: %w", err)
	}
	topIn, err := uc.reportRepo.TopProducts("IN", from, topLimit)
	if err != nil {
		return nil, fmt.Errorf("reporte: top entradas: %w", err)
	}
	topOut, err := uc.reportRepo.TopProducts("OUT", from, topLimit)
	if err != nil {
		return nil, fmt.Errorf("reporte: top salidas: %w", err)
	}
	return &MovementReport{
		From:   from,
		To:     to,
		Days:   days,
		Daily:  daily,
		TopIn:  topIn,
		TopOut: topOut,
	}, nil
}

// Dashboard devuelve los indicadores del tablero de administración: tamaño
// del catálogo activo, movimientos del día por tipo y productos críticos.
func (uc *ReportUseCase) Dashboard() (*repository.DashboardSummary, error) {
	summary, err := uc.reportRepo.Dashboard()
	if err != nil {
		return nil, fmt.Errorf("reporte: tablero: %w", err)
	}
	return summary, nil
}

// LowStock lista los productos cuyo stock total quedó bajo su mínimo.
func (uc *ReportUseCase) LowStock() ([]*repository.LowStockRow, error) {
	return uc.reportRepo.LowStock()
}

// ExportPDF genera el PDF del reporte de movimientos y su nombre de archivo.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, days int) ([]byte, string, error) {
	report, err := uc.MovementReport(days)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateMovementReportPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	name := fmt.Sprintf("movimientos_%s_%dd.pdf", report.To.Format("20060102"), report.Days)
	return data, name, nil
}

// ExportXML serializa el reporte de movimientos a XML y su nombre de archivo.
func (uc *ReportUseCase) ExportXML(ctx context.Context, days int) ([]byte, string, error) {
	report, err := uc.MovementReport(days)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.xml.ExportMovementReportXML(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: exportar xml: %w", err)
	}
	name := fmt.Sprintf("movimientos_%s_%dd.xml", report.To.Format("20060102"), report.Days)
	return data, name, nil
}

package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-wms/internal/application/dto"
	"github.com/tu-usuario/almacen-wms/internal/application/reports"
)

// ReportHandler reportes de solo lectura sobre el libro y los saldos.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Movements godoc
// @Summary      Reporte de movimientos (ventana en días, 1 a 90)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "ventana en días"  default(7)
// @Success      200  {object}  dto.MovementReportResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	report, err := h.uc.MovementReport(c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := dto.MovementReportResponse{
		From:   report.From.Format("2006-01-02"),
		To:     report.To.Format("2006-01-02"),
		Days:   report.Days,
		Daily:  make([]dto.DailyCountDTO, 0, len(report.Daily)),
		TopIn:  make([]dto.ProductTotalDTO, 0, len(report.TopIn)),
		TopOut: make([]dto.ProductTotalDTO, 0, len(report.TopOut)),
	}
	for _, d := range report.Daily {
		out.Daily = append(out.Daily, dto.DailyCountDTO{Day: d.Day.Format("2006-01-02"), Count: d.Count})
	}
	for _, t := range report.TopIn {
		out.TopIn = append(out.TopIn, dto.ProductTotalDTO{ProductID: t.ProductID, ProductName: t.ProductName, SKU: t.SKU, Total: t.Total})
	}
	for _, t := range report.TopOut {
		out.TopOut = append(out.TopOut, dto.ProductTotalDTO{ProductID: t.ProductID, ProductName: t.ProductName, SKU: t.SKU, Total: t.Total})
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Indicadores del tablero de administración
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.uc.Dashboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DashboardResponse{
		TotalProducts:    summary.TotalProducts,
		TotalWarehouses:  summary.TotalWarehouses,
		TodayIn:          summary.TodayIn,
		TodayOut:         summary.TodayOut,
		CriticalProducts: summary.CriticalProducts,
	})
}

// LowStock godoc
// @Summary      Productos bajo stock mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.uc.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockDTO{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			SKU:           r.SKU,
			MinStockLevel: r.MinStockLevel,
			Quantity:      r.Quantity,
		})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar reporte de movimientos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        days  query  int  false  "ventana en días"  default(7)
// @Success      200  {file}  binary
// @Router       /api/reports/movements/export.pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportPDF(c.Context(), c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// ExportXML godoc
// @Summary      Descargar reporte de movimientos en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        days  query  int  false  "ventana en días"  default(7)
// @Success      200  {file}  binary
// @Router       /api/reports/movements/export.xml [get]
func (h *ReportHandler) ExportXML(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportXML(c.Context(), c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

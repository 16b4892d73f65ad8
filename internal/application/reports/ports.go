package reports

import "context"

// PDFGenerator genera la representación PDF del reporte de movimientos.
// La implementación vive en internal/infrastructure/pdf.
type PDFGenerator interface {
	GenerateMovementReportPDF(ctx context.Context, report *MovementReport) ([]byte, error)
}

// XMLExporter serializa el reporte de movimientos a XML.
// La implementación vive en internal/infrastructure/xmlexport.
type XMLExporter interface {
	ExportMovementReportXML(ctx context.Context, report *MovementReport) ([]byte, error)
}

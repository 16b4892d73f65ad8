// Package xmlexport serializa el reporte de movimientos a XML con etree.
// Formato propio y plano, pensado para importarse en hojas de cálculo o en
// otros sistemas de bodega.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/tu-usuario/almacen-wms/internal/application/reports"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// EtreeExporter implementa reports.XMLExporter.
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter {
	return &EtreeExporter{}
}

var _ reports.XMLExporter = (*EtreeExporter)(nil)

// ExportMovementReportXML genera el documento y devuelve sus bytes indentados.
func (e *EtreeExporter) ExportMovementReportXML(
	_ context.Context,
	report *reports.MovementReport,
) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ReporteMovimientos")
	root.CreateAttr("desde", report.From.Format("2006-01-02"))
	root.CreateAttr("hasta", report.To.Format("2006-01-02"))
	root.CreateAttr("dias", strconv.Itoa(report.Days))

	daily := root.CreateElement("MovimientosPorDia")
	for _, d := range report.Daily {
		e := daily.CreateElement("Dia")
		e.CreateAttr("fecha", d.Day.Format("2006-01-02"))
		e.CreateAttr("total", strconv.Itoa(d.Count))
	}

	appendTop(root.CreateElement("TopEntradas"), report.TopIn)
	appendTop(root.CreateElement("TopSalidas"), report.TopOut)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return out, nil
}

func appendTop(parent *etree.Element, totals []*repository.ProductMovementTotal) {
	for _, t := range totals {
		e := parent.CreateElement("Producto")
		e.CreateAttr("sku", t.SKU)
		e.CreateAttr("cantidad", t.Total.String())
		e.SetText(t.ProductName)
	}
}

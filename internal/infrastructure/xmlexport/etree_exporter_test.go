package xmlexport_test

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-wms/internal/application/reports"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
	"github.com/tu-usuario/almacen-wms/internal/infrastructure/xmlexport"
)

func TestExportMovementReportXML(t *testing.T) {
	to := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	report := &reports.MovementReport{
		From: to.AddDate(0, 0, -7),
		To:   to,
		Days: 7,
		Daily: []*repository.DailyMovementCount{
			{Day: to.AddDate(0, 0, -1), Count: 4},
		},
		TopIn: []*repository.ProductMovementTotal{
			{ProductID: "p1", ProductName: "Azúcar Morena", SKU: "SKU-1", Total: decimal.RequireFromString("12.5")},
		},
		TopOut: []*repository.ProductMovementTotal{},
	}

	out, err := xmlexport.NewEtreeExporter().ExportMovementReportXML(context.Background(), report)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "ReporteMovimientos", root.Tag)
	assert.Equal(t, "2026-08-22", root.SelectAttrValue("desde", ""))
	assert.Equal(t, "2026-08-29", root.SelectAttrValue("hasta", ""))
	assert.Equal(t, "7", root.SelectAttrValue("dias", ""))

	dias := root.SelectElement("MovimientosPorDia").SelectElements("Dia")
	require.Len(t, dias, 1)
	assert.Equal(t, "2026-08-28", dias[0].SelectAttrValue("fecha", ""))
	assert.Equal(t, "4", dias[0].SelectAttrValue("total", ""))

	entradas := root.SelectElement("TopEntradas").SelectElements("Producto")
	require.Len(t, entradas, 1)
	assert.Equal(t, "SKU-1", entradas[0].SelectAttrValue("sku", ""))
	assert.Equal(t, "12.5", entradas[0].SelectAttrValue("cantidad", ""))
	assert.Equal(t, "Azúcar Morena", entradas[0].Text())

	salidas := root.SelectElement("TopSalidas")
	require.NotNil(t, salidas, "la sección existe aunque esté vacía")
	assert.Empty(t, salidas.SelectElements("Producto"))
}

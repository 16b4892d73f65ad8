package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-wms/internal/application/reports"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

type memReportRepo struct {
	lastSince time.Time
	kinds     []string
	summary   *repository.DashboardSummary
}

func (r *memReportRepo) DailyMovementCounts(since time.Time) ([]*repository.DailyMovementCount, error) {
	r.lastSince = since
	return []*repository.DailyMovementCount{{Day: since, Count: 3}}, nil
}

func (r *memReportRepo) TopProducts(kind string, since time.Time, limit int) ([]*repository.ProductMovementTotal, error) {
	r.kinds = append(r.kinds, kind)
	return nil, nil
}

func (r *memReportRepo) LowStock() ([]*repository.LowStockRow, error) { return nil, nil }

func (r *memReportRepo) Dashboard() (*repository.DashboardSummary, error) {
	if r.summary == nil {
		return &repository.DashboardSummary{}, nil
	}
	return r.summary, nil
}

type stubPDF struct{ payload []byte }

func (s *stubPDF) GenerateMovementReportPDF(_ context.Context, _ *reports.MovementReport) ([]byte, error) {
	return s.payload, nil
}

type stubXML struct{ payload []byte }

func (s *stubXML) ExportMovementReportXML(_ context.Context, _ *reports.MovementReport) ([]byte, error) {
	return s.payload, nil
}

func TestMovementReport_VentanaAcotada(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 7},   // default
		{-3, 7},  // negativo usa el default
		{30, 30}, // dentro del rango
		{200, 90},
	}
	for _, tc := range cases {
		repo := &memReportRepo{}
		uc := reports.NewReportUseCase(repo, &stubPDF{}, &stubXML{})
		rep, err := uc.MovementReport(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, rep.Days, "ventana para days=%d", tc.in)
		assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -tc.want), repo.lastSince, 5*time.Second)
	}
}

func TestMovementReport_ConsultaEntradasYSalidas(t *testing.T) {
	repo := &memReportRepo{}
	uc := reports.NewReportUseCase(repo, &stubPDF{}, &stubXML{})
	_, err := uc.MovementReport(7)
	require.NoError(t, err)
	assert.Equal(t, []string{"IN", "OUT"}, repo.kinds)
}

func TestDashboard_DevuelveIndicadores(t *testing.T) {
	repo := &memReportRepo{summary: &repository.DashboardSummary{
		TotalProducts:    12,
		TotalWarehouses:  2,
		TodayIn:          5,
		TodayOut:         3,
		CriticalProducts: 1,
	}}
	uc := reports.NewReportUseCase(repo, &stubPDF{}, &stubXML{})
	got, err := uc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, repo.summary, got)
}

func TestExportPDF_NombreDeArchivo(t *testing.T) {
	uc := reports.NewReportUseCase(&memReportRepo{}, &stubPDF{payload: []byte("%PDF")}, &stubXML{})
	data, name, err := uc.ExportPDF(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Regexp(t, `^movimientos_\d{8}_7d\.pdf$`, name)
}

func TestExportXML_NombreDeArchivo(t *testing.T) {
	uc := reports.NewReportUseCase(&memReportRepo{}, &stubPDF{}, &stubXML{payload: []byte("<reporte/>")})
	data, name, err := uc.ExportXML(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("<reporte/>"), data)
	assert.Regexp(t, `^movimientos_\d{8}_7d\.xml$`, name, "days=0 usa la ventana default")
}

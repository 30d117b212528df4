package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/print3d-api/internal/application/analytics"
	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/domain"
	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/sales"
)

func ts(y int, m time.Month, d, h int) *time.Time {
	t := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	return &t
}

func ledger() []entity.SaleRecord {
	return []entity.SaleRecord{
		{ID: "s1", ProductName: "Dragón", SoldAt: ts(2024, 3, 10, 10), QuantitySold: 1,
			Revenue: 100, TotalCosts: 20, ProductionCostBase: 10, Profit: 80, SalesChannel: "Etsy"},
		{ID: "s2", ProductName: "Maceta", SoldAt: ts(2024, 3, 12, 18), QuantitySold: "2",
			Revenue: "50", TotalCosts: "5", ProductionCostBase: "2", Profit: "30", SalesChannel: "",
			ExtraCosts: entity.ExtraCosts{{Amount: 3, Note: "envío urgente"}}},
		{ID: "s3", ProductName: "Viejo", SoldAt: ts(2023, 12, 1, 9), Revenue: 999, Profit: 999, SalesChannel: "Etsy"},
		{ID: "s4", ProductName: "Sin fecha", Revenue: 500, Profit: 500},
	}
}

func reportConfig() analytics.ReportConfig {
	return analytics.ReportConfig{
		Split: sales.DefaultSplitPolicy(),
		Channels: sales.NewChannelSettings([]sales.ChannelConfig{
			{Name: "Etsy", FeePercent: decimal.RequireFromString("6.5"), FixedFee: decimal.RequireFromString("0.20")},
			{Name: "eBay", FeePercent: decimal.NewFromInt(13)},
		}, nil),
	}
}

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestGetReport_UltimosTreintaDias(t *testing.T) {
	uc := analytics.NewSalesReportUseCase(fakeSales{rows: ledger()}, reportConfig(), nil, nil)

	out, err := uc.GetReport(context.Background(), dto.SalesReportRequest{}, now)
	require.NoError(t, err)

	assert.Equal(t, "last_30_days", out.Period)
	require.Len(t, out.Sales, 2)
	assert.Equal(t, "3", out.Totals.TotalSales.String())
	assert.Equal(t, "150", out.Totals.TotalRevenue.String())
	assert.Equal(t, "30", out.Totals.TotalCost.String(), "20×1 + 5×2")
	assert.Equal(t, "14", out.Totals.TotalProductionCost.String())
	assert.Equal(t, "110", out.Totals.TotalProfit.String())
	assert.Equal(t, "80", out.Totals.ProducerShare.String(), "110×0.6 + 14")
	assert.Equal(t, "44", out.Totals.SellerShare.String())

	require.Len(t, out.Daily, 2)
	assert.Equal(t, "2024-03-10", out.Daily[0].Date)
	assert.Equal(t, sales.UnknownChannel, out.Daily[1].Channels[0].Channel)

	require.Len(t, out.Channels, 3)
	assert.Equal(t, "Etsy", out.Channels[0].Channel)
	assert.Equal(t, "6.7", out.Channels[0].EstimatedFees.String(), "100×6.5% + 0.20")
	assert.Equal(t, "eBay", out.Channels[1].Channel)
	assert.True(t, out.Channels[1].Count.IsZero())
	assert.Equal(t, sales.UnknownChannel, out.Channels[2].Channel)
	assert.False(t, out.Channels[2].Configured)

	assert.Equal(t, "envío urgente", out.Sales[1].ExtraCostsNote)
	assert.Equal(t, "10", out.Sales[1].TotalCost.String())
}

func TestGetReport_FiltrosDeCanalYTexto(t *testing.T) {
	uc := analytics.NewSalesReportUseCase(fakeSales{rows: ledger()}, reportConfig(), nil, nil)

	out, err := uc.GetReport(context.Background(), dto.SalesReportRequest{Channel: "unknown"}, now)
	require.NoError(t, err)
	require.Len(t, out.Sales, 1)
	assert.Equal(t, "s2", out.Sales[0].ID)
	assert.Equal(t, "2", out.Totals.TotalSales.String())

	out, err = uc.GetReport(context.Background(), dto.SalesReportRequest{Query: "URGENTE"}, now)
	require.NoError(t, err)
	require.Len(t, out.Sales, 1)
	assert.Equal(t, "s2", out.Sales[0].ID)
}

func TestGetReport_RangoPersonalizado(t *testing.T) {
	uc := analytics.NewSalesReportUseCase(fakeSales{rows: ledger()}, reportConfig(), nil, nil)

	out, err := uc.GetReport(context.Background(), dto.SalesReportRequest{
		StartDate: "2023-12-01", EndDate: "2024-03-10",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "custom", out.Period)
	require.Len(t, out.Sales, 2)
	assert.Equal(t, "s1", out.Sales[0].ID)
	assert.Equal(t, "s3", out.Sales[1].ID)

	out, err = uc.GetReport(context.Background(), dto.SalesReportRequest{Period: "custom"}, now)
	require.NoError(t, err)
	assert.Nil(t, out.Start)
	assert.Nil(t, out.End)
	assert.Len(t, out.Sales, 3, "sin límites: todo salvo la venta sin fecha")
}

func TestGetReport_FechasInvalidas(t *testing.T) {
	uc := analytics.NewSalesReportUseCase(fakeSales{rows: ledger()}, reportConfig(), nil, nil)

	_, err := uc.GetReport(context.Background(), dto.SalesReportRequest{Period: "custom", StartDate: "10/03/2024"}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetReport(context.Background(), dto.SalesReportRequest{StartDate: "2024-03-10", EndDate: "2024-03-01"}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetReport_FalloDeDatos(t *testing.T) {
	uc := analytics.NewSalesReportUseCase(fakeSales{err: errDB}, reportConfig(), nil, nil)
	_, err := uc.GetReport(context.Background(), dto.SalesReportRequest{}, now)
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

func TestExport_UsaRendererYNombreDeArchivo(t *testing.T) {
	pdf := &fakeRenderer{}
	uc := analytics.NewSalesReportUseCase(fakeSales{rows: ledger()}, reportConfig(), pdf, nil)

	file, err := uc.ExportPDF(context.Background(), dto.SalesReportRequest{Period: "current_month"}, now)
	require.NoError(t, err)
	assert.Equal(t, "ventas_current_month_2024-03-15.bin", file.Filename)
	assert.Equal(t, "application/x-test", file.ContentType)
	assert.Equal(t, []byte("archivo"), file.Content)
	require.NotNil(t, pdf.got)
	assert.Len(t, pdf.got.Sales, 2)

	_, err = uc.ExportXLSX(context.Background(), dto.SalesReportRequest{}, now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

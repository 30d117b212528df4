package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/domain"
	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/filter"
	"github.com/jhoicas/print3d-api/internal/domain/money"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
	"github.com/jhoicas/print3d-api/internal/domain/sales"
)

const dateLayout = "2006-01-02"

// ReportConfig parámetros de negocio del reporte, fijados al cargar la configuración.
type ReportConfig struct {
	Split    sales.SplitPolicy
	Channels sales.ChannelSettings
}

// SalesReportUseCase reporte de ventas del período con reparto de beneficio.
type SalesReportUseCase struct {
	sales repository.SaleRepository
	cfg   ReportConfig
	pdf   SalesReportRenderer
	xlsx  SalesReportRenderer
}

// NewSalesReportUseCase construye el caso de uso. Los renderers pueden ser nil
// si no se exponen las exportaciones.
func NewSalesReportUseCase(
	salesRepo repository.SaleRepository,
	cfg ReportConfig,
	pdf, xlsx SalesReportRenderer,
) *SalesReportUseCase {
	return &SalesReportUseCase{sales: salesRepo, cfg: cfg, pdf: pdf, xlsx: xlsx}
}

// GetReport resuelve el rango, agrega las ventas y arma series y resumen por canal.
//
// Los filtros de canal y texto libre se aplican antes de agregar, de modo que
// los totales siempre cuadran con las filas devueltas.
func (uc *SalesReportUseCase) GetReport(
	ctx context.Context,
	req dto.SalesReportRequest,
	now time.Time,
) (*dto.SalesReportDTO, error) {
	period, rng, err := resolveRequestRange(req, now)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w: %w", domain.ErrDataSource, err)
	}

	// ── Filtrado ───────────────────────────────────────────────────────────────
	match := filter.All(
		sales.SoldWithin(rng),
		sales.ChannelIs(req.Channel),
		sales.MatchesText(req.Query),
	)
	rows := filter.Apply(ledger, match)

	zerolog.Ctx(ctx).Debug().
		Str("period", string(period)).
		Int("ledger", len(ledger)).
		Int("matched", len(rows)).
		Msg("reporte de ventas: filas filtradas")

	// ── Agregación ─────────────────────────────────────────────────────────────
	totals := sales.Aggregate(rows, rng, uc.cfg.Split)
	days := sales.Bucketize(rows)
	channels := sales.SummarizeChannels(rows, uc.cfg.Channels)

	return &dto.SalesReportDTO{
		Period:   string(period),
		Start:    rng.Start,
		End:      rng.End,
		Totals:   toTotalsDTO(totals),
		Daily:    toDayDTOs(days),
		Channels: toChannelDTOs(channels),
		Sales:    toSaleRows(rows),
	}, nil
}

// ExportPDF genera el reporte en PDF.
func (uc *SalesReportUseCase) ExportPDF(ctx context.Context, req dto.SalesReportRequest, now time.Time) (*dto.ExportFile, error) {
	return uc.export(ctx, req, now, uc.pdf)
}

// ExportXLSX genera el reporte como libro de Excel.
func (uc *SalesReportUseCase) ExportXLSX(ctx context.Context, req dto.SalesReportRequest, now time.Time) (*dto.ExportFile, error) {
	return uc.export(ctx, req, now, uc.xlsx)
}

func (uc *SalesReportUseCase) export(
	ctx context.Context,
	req dto.SalesReportRequest,
	now time.Time,
	r SalesReportRenderer,
) (*dto.ExportFile, error) {
	if r == nil {
		return nil, fmt.Errorf("exportación no configurada: %w", domain.ErrNotFound)
	}
	report, err := uc.GetReport(ctx, req, now)
	if err != nil {
		return nil, err
	}
	content, err := r.Render(report)
	if err != nil {
		return nil, fmt.Errorf("exportar reporte: %w", err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("ventas_%s_%s.%s", report.Period, now.Format(dateLayout), r.Extension()),
		ContentType: r.ContentType(),
		Content:     content,
	}, nil
}

// resolveRequestRange interpreta period/start_date/end_date en la zona de now.
// Si llegan fechas sin período se asume custom.
func resolveRequestRange(req dto.SalesReportRequest, now time.Time) (sales.Period, sales.Range, error) {
	hasDates := strings.TrimSpace(req.StartDate) != "" || strings.TrimSpace(req.EndDate) != ""
	period := sales.ParsePeriod(req.Period)
	if strings.TrimSpace(req.Period) == "" && hasDates {
		period = sales.PeriodCustom
	}
	if period != sales.PeriodCustom {
		return period, sales.ResolveRange(period, nil, nil, now), nil
	}

	var start, end *time.Time
	if s := strings.TrimSpace(req.StartDate); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, now.Location())
		if err != nil {
			return "", sales.Range{}, fmt.Errorf("start_date inválida (YYYY-MM-DD): %w", domain.ErrInvalidInput)
		}
		first, _ := sales.DayBounds(t)
		start = &first
	}
	if s := strings.TrimSpace(req.EndDate); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, now.Location())
		if err != nil {
			return "", sales.Range{}, fmt.Errorf("end_date inválida (YYYY-MM-DD): %w", domain.ErrInvalidInput)
		}
		_, last := sales.DayBounds(t)
		end = &last
	}
	if start != nil && end != nil && start.After(*end) {
		return "", sales.Range{}, fmt.Errorf("start_date posterior a end_date: %w", domain.ErrInvalidInput)
	}
	return period, sales.ResolveRange(period, start, end, now), nil
}

// ── Mapeo a DTO ───────────────────────────────────────────────────────────────

func toTotalsDTO(t sales.Totals) dto.SalesTotalsDTO {
	return dto.SalesTotalsDTO{
		TotalSales:          t.TotalSales,
		TotalRevenue:        t.TotalRevenue.Round(2),
		TotalCost:           t.TotalCost.Round(2),
		TotalProductionCost: t.TotalProductionCost.Round(2),
		TotalProfit:         t.TotalProfit.Round(2),
		ProducerShare:       t.ProducerShare.Round(2),
		SellerShare:         t.SellerShare.Round(2),
	}
}

func toDayDTOs(days []sales.DayBucket) []dto.DayBucketDTO {
	out := make([]dto.DayBucketDTO, 0, len(days))
	for _, d := range days {
		tallies := make([]dto.ChannelTallyDTO, 0, len(d.Channels))
		for _, c := range d.Channels {
			tallies = append(tallies, dto.ChannelTallyDTO{Channel: c.Channel, Count: c.Count, Revenue: c.Revenue.Round(2)})
		}
		out = append(out, dto.DayBucketDTO{Date: d.Date, Count: d.Count, Revenue: d.Revenue.Round(2), Channels: tallies})
	}
	return out
}

func toChannelDTOs(channels []sales.ChannelSummary) []dto.ChannelDTO {
	out := make([]dto.ChannelDTO, 0, len(channels))
	for _, c := range channels {
		out = append(out, dto.ChannelDTO{
			Channel:       c.Channel,
			Configured:    c.Configured,
			Count:         c.Count,
			Revenue:       c.Revenue.Round(2),
			Profit:        c.Profit.Round(2),
			EstimatedFees: c.EstimatedFees.Round(2),
		})
	}
	return out
}

func toSaleRows(rows []entity.SaleRecord) []dto.SaleRowDTO {
	out := make([]dto.SaleRowDTO, 0, len(rows))
	for _, s := range rows {
		qty := s.Quantity()
		row := dto.SaleRowDTO{
			ID:             s.ID,
			ProductName:    s.ProductName,
			Channel:        sales.ChannelLabel(s),
			Quantity:       qty,
			Revenue:        money.Normalize(s.Revenue).Round(2),
			TotalCost:      money.Normalize(s.TotalCosts).Mul(qty).Round(2),
			Profit:         money.Normalize(s.Profit).Round(2),
			ExtraCostsNote: joinNotes(s.ProductionExtraCosts, s.ExtraCosts),
		}
		if s.SoldAt != nil {
			row.SoldAt = *s.SoldAt
		}
		out = append(out, row)
	}
	return out
}

func joinNotes(lists ...entity.ExtraCosts) string {
	var notes []string
	for _, list := range lists {
		for _, c := range list {
			if n := strings.TrimSpace(c.Note); n != "" {
				notes = append(notes, n)
			}
		}
	}
	return strings.Join(notes, "; ")
}

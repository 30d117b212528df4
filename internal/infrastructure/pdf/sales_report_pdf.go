// Package pdf genera el reporte de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período          │  Rango + generado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Ingresos / Costos / Beneficio / Reparto   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CANALES: Canal | Uds | Ingresos | Beneficio | Comisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENTAS: Fecha | Producto | Canal | Uds | Ingreso | Benef.   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/print3d-api/internal/application/analytics"
	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/infrastructure/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateFmt = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.SalesReportRenderer = (*SalesReportPDF)(nil)

// SalesReportPDF implementa analytics.SalesReportRenderer usando Maroto v2.
type SalesReportPDF struct {
	numbers  format.Numbers
	business string
}

// NewSalesReportPDF construye el generador. business aparece como autor y en el encabezado.
func NewSalesReportPDF(numbers format.Numbers, business string) *SalesReportPDF {
	return &SalesReportPDF{numbers: numbers, business: business}
}

// ContentType MIME del archivo generado.
func (g *SalesReportPDF) ContentType() string { return "application/pdf" }

// Extension extensión del archivo generado.
func (g *SalesReportPDF) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *SalesReportPDF) Render(report *dto.SalesReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		WithAuthor(g.business, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.totalsRows(report.Totals)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("VENTAS POR CANAL"))
	m.AddRows(tableHeader([]string{"Canal", "Uds.", "Ingresos", "Beneficio", "Comisión est."}, []int{4, 1, 2, 2, 3}))
	for _, c := range report.Channels {
		m.AddRows(tableRow([]string{
			c.Channel,
			g.numbers.Quantity(c.Count),
			g.numbers.Money(c.Revenue),
			g.numbers.Money(c.Profit),
			g.numbers.Money(c.EstimatedFees),
		}, []int{4, 1, 2, 2, 3}))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("DETALLE DE VENTAS"))
	m.AddRows(tableHeader([]string{"Fecha", "Producto", "Canal", "Uds.", "Ingreso", "Beneficio"}, []int{2, 3, 2, 1, 2, 2}))
	for _, s := range report.Sales {
		m.AddRows(tableRow([]string{
			s.SoldAt.Format(dateFmt),
			nonEmpty(s.ProductName, "—"),
			s.Channel,
			g.numbers.Quantity(s.Quantity),
			g.numbers.Money(s.Revenue),
			g.numbers.Money(s.Profit),
		}, []int{2, 3, 2, 1, 2, 2}))
	}
	if len(report.Sales) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas en el período.", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio + período (izq) y rango de fechas (der).
func (g *SalesReportPDF) headerRow(report *dto.SalesReportDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(g.business, "Reporte de ventas"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+report.Period, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(rangeLabel(report.Start, report.End), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// totalsRows: etiquetas a la izquierda, valores a la derecha; el reparto destacado.
func (g *SalesReportPDF) totalsRows(t dto.SalesTotalsDTO) []core.Row {
	pair := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		var color *props.Color
		if bold {
			style = fontstyle.Bold
			color = colorPrimary
		}
		return row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Color: color})),
			col.New(3).Add(text.New(value, props.Text{Style: style, Size: 9, Align: align.Right, Right: 1, Color: color})),
		)
	}
	return []core.Row{
		pair("Unidades vendidas:", g.numbers.Quantity(t.TotalSales), false),
		pair("Ingresos:", g.numbers.Money(t.TotalRevenue), false),
		pair("Costos totales:", g.numbers.Money(t.TotalCost), false),
		pair("Costo de producción:", g.numbers.Money(t.TotalProductionCost), false),
		pair("Beneficio:", g.numbers.Money(t.TotalProfit), false),
		pair("Parte productor:", g.numbers.Money(t.ProducerShare), true),
		pair("Parte vendedor:", g.numbers.Money(t.SellerShare), true),
	}
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: columnAlign(i), Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: columnAlign(i), Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnAlign: la primera columna es texto, el resto cifras.
func columnAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}

func rangeLabel(start, end *time.Time) string {
	from, to := "inicio", "hoy"
	if start != nil {
		from = start.Format(dateFmt)
	}
	if end != nil {
		to = end.Format(dateFmt)
	}
	return from + " – " + to
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

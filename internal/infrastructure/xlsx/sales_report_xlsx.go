// Package xlsx genera el reporte de ventas como libro de Excel.
//
// Hojas: "Resumen" (totales y reparto), "Canales", "Diario" y "Ventas".
// Los montos se escriben como números para que la hoja permita sumar y filtrar.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/print3d-api/internal/application/analytics"
	"github.com/jhoicas/print3d-api/internal/application/dto"
)

const (
	sheetSummary  = "Resumen"
	sheetChannels = "Canales"
	sheetDaily    = "Diario"
	sheetSales    = "Ventas"

	dateFmt = "2006-01-02"
)

var _ analytics.SalesReportRenderer = (*SalesReportXLSX)(nil)

// SalesReportXLSX implementa analytics.SalesReportRenderer con excelize.
type SalesReportXLSX struct{}

// NewSalesReportXLSX construye el generador.
func NewSalesReportXLSX() *SalesReportXLSX { return &SalesReportXLSX{} }

// ContentType MIME del archivo generado.
func (g *SalesReportXLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension extensión del archivo generado.
func (g *SalesReportXLSX) Extension() string { return "xlsx" }

// Render escribe las cuatro hojas y devuelve el libro serializado.
func (g *SalesReportXLSX) Render(report *dto.SalesReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// la hoja por defecto "Sheet1" pasa a ser el resumen
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	for _, name := range []string{sheetChannels, sheetDaily, sheetSales} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: hoja %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	w := &sheetWriter{f: f, header: bold}
	w.summary(report)
	w.channels(report.Channels)
	w.daily(report.Daily)
	w.sales(report.Sales)
	if w.err != nil {
		return nil, fmt.Errorf("xlsx: escribir celdas: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no chequear cada celda.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) row(sheet string, rowNo int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) headerRow(sheet string, labels ...any) {
	w.row(sheet, 1, labels...)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(labels), 1)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, "A1", last, w.header)
}

func (w *sheetWriter) summary(r *dto.SalesReportDTO) {
	start, end := "", ""
	if r.Start != nil {
		start = r.Start.Format(dateFmt)
	}
	if r.End != nil {
		end = r.End.Format(dateFmt)
	}
	w.headerRow(sheetSummary, "Concepto", "Valor")
	rows := [][]any{
		{"Período", r.Period},
		{"Desde", start},
		{"Hasta", end},
		{"Unidades vendidas", num(r.Totals.TotalSales)},
		{"Ingresos", num(r.Totals.TotalRevenue)},
		{"Costos totales", num(r.Totals.TotalCost)},
		{"Costo de producción", num(r.Totals.TotalProductionCost)},
		{"Beneficio", num(r.Totals.TotalProfit)},
		{"Parte productor", num(r.Totals.ProducerShare)},
		{"Parte vendedor", num(r.Totals.SellerShare)},
	}
	for i, v := range rows {
		w.row(sheetSummary, i+2, v...)
	}
}

func (w *sheetWriter) channels(list []dto.ChannelDTO) {
	w.headerRow(sheetChannels, "Canal", "Configurado", "Unidades", "Ingresos", "Beneficio", "Comisión estimada")
	for i, c := range list {
		w.row(sheetChannels, i+2, c.Channel, c.Configured, num(c.Count), num(c.Revenue), num(c.Profit), num(c.EstimatedFees))
	}
}

func (w *sheetWriter) daily(days []dto.DayBucketDTO) {
	w.headerRow(sheetDaily, "Fecha", "Canal", "Unidades", "Ingresos")
	rowNo := 2
	for _, d := range days {
		for _, c := range d.Channels {
			w.row(sheetDaily, rowNo, d.Date, c.Channel, num(c.Count), num(c.Revenue))
			rowNo++
		}
	}
}

func (w *sheetWriter) sales(list []dto.SaleRowDTO) {
	w.headerRow(sheetSales, "ID", "Fecha", "Producto", "Canal", "Unidades", "Ingreso", "Costo total", "Beneficio", "Notas")
	for i, s := range list {
		w.row(sheetSales, i+2,
			s.ID, s.SoldAt.Format(dateFmt), s.ProductName, s.Channel,
			num(s.Quantity), num(s.Revenue), num(s.TotalCost), num(s.Profit), s.ExtraCostsNote,
		)
	}
}

// num convierte a float64 para que Excel guarde la celda como número.
func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// SalesReportRequest parámetros de GET /api/reports/sales (y sus exportaciones).
type SalesReportRequest struct {
	Period    string `query:"period" validate:"omitempty,oneof=last_7_days last_30_days current_month last_month custom"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"` // solo period=custom
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`   // solo period=custom
	Channel   string `query:"channel" validate:"max=100"`
	Query     string `query:"q" validate:"max=200"`
}

// ── Respuesta ─────────────────────────────────────────────────────────────────

// SalesReportDTO respuesta completa del reporte de ventas.
type SalesReportDTO struct {
	Period   string         `json:"period"`
	Start    *time.Time     `json:"start"` // nil = sin límite
	End      *time.Time     `json:"end"`
	Totals   SalesTotalsDTO `json:"totals"`
	Daily    []DayBucketDTO `json:"daily"`
	Channels []ChannelDTO   `json:"channels"`
	Sales    []SaleRowDTO   `json:"sales"`
}

// SalesTotalsDTO totales del período y reparto del beneficio.
type SalesTotalsDTO struct {
	TotalSales          decimal.Decimal `json:"total_sales"` // unidades
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	TotalProductionCost decimal.Decimal `json:"total_production_cost"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	ProducerShare       decimal.Decimal `json:"producer_share"` // profit × ratio + costo de producción
	SellerShare         decimal.Decimal `json:"seller_share"`
}

// DayBucketDTO ventas de un día (UTC) por canal, para el gráfico.
type DayBucketDTO struct {
	Date     string            `json:"date"`
	Count    decimal.Decimal   `json:"count"`
	Revenue  decimal.Decimal   `json:"revenue"`
	Channels []ChannelTallyDTO `json:"channels"`
}

// ChannelTallyDTO acumulado de un canal dentro de un día.
type ChannelTallyDTO struct {
	Channel string          `json:"channel"`
	Count   decimal.Decimal `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ChannelDTO totales por canal con la comisión estimada según configuración.
type ChannelDTO struct {
	Channel       string          `json:"channel"`
	Configured    bool            `json:"configured"`
	Count         decimal.Decimal `json:"count"`
	Revenue       decimal.Decimal `json:"revenue"`
	Profit        decimal.Decimal `json:"profit"`
	EstimatedFees decimal.Decimal `json:"estimated_fees"`
}

// SaleRowDTO fila de venta para la tabla del reporte.
type SaleRowDTO struct {
	ID             string          `json:"id"`
	ProductName    string          `json:"product_name"`
	SoldAt         time.Time       `json:"sold_at"`
	Channel        string          `json:"channel"`
	Quantity       decimal.Decimal `json:"quantity"`
	Revenue        decimal.Decimal `json:"revenue"`
	TotalCost      decimal.Decimal `json:"total_cost"` // por unidad × cantidad
	Profit         decimal.Decimal `json:"profit"`
	ExtraCostsNote string          `json:"extra_costs_note,omitempty"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

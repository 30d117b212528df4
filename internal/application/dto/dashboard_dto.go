package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Valoración del almacén más la cola de impresión ordenada.
type DashboardSummaryDTO struct {
	// Valoración (dinero ya gastado vs. dinero recuperable)
	ProductionValue decimal.Decimal `json:"production_value"` // en cola + disponible, a costo
	SaleValue       decimal.Decimal `json:"sale_value"`       // disponible, a precio de venta

	// Unidades por estado
	QueuedQty    decimal.Decimal `json:"queued_qty"`
	PrintingQty  decimal.Decimal `json:"printing_qty"`
	AvailableQty decimal.Decimal `json:"available_qty"`
	SoldQty      decimal.Decimal `json:"sold_qty"` // desde el libro de ventas

	MaterialsCount int            `json:"materials_count"`
	Queue          []QueueItemDTO `json:"queue"`

	GeneratedAt string `json:"generated_at"` // RFC 3339 en la zona del negocio
}

// QueueItemDTO unidad en cola o imprimiéndose.
type QueueItemDTO struct {
	UnitID     string           `json:"unit_id"`
	Name       string           `json:"name"`
	Photo      string           `json:"photo,omitempty"`
	Status     string           `json:"status"`
	Quantity   decimal.Decimal  `json:"quantity"`
	QueueOrder *decimal.Decimal `json:"queue_order"`
	Colors     []ColorDTO       `json:"colors"` // [] = sin color asignado
}

// ColorDTO material resuelto para mostrar (hex vacío si es inválido).
type ColorDTO struct {
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Hex        string `json:"hex,omitempty"`
}

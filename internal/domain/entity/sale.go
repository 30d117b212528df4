package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// SaleRecord fila del libro de ventas.
//
// TotalCosts y ProductionCostBase son valores por unidad; Profit ya viene
// totalizado por la fila y es la cifra autoritativa (no se recalcula).
type SaleRecord struct {
	ID                   string
	ProductID            string
	ProductName          string // join models.name, solo para mostrar
	SoldAt               *time.Time
	QuantitySold         any
	Revenue              any
	TotalCosts           any
	ProductionCostBase   any
	Profit               any
	SalesChannel         string
	ProductionExtraCosts ExtraCosts
	ExtraCosts           ExtraCosts
}

// Quantity cantidad vendida; 1 si falta o no es interpretable.
func (s SaleRecord) Quantity() decimal.Decimal {
	return money.QuantityOr(s.QuantitySold, money.One)
}

// Channel etiqueta del canal sin espacios sobrantes (puede quedar vacía).
func (s SaleRecord) Channel() string {
	return strings.TrimSpace(s.SalesChannel)
}

package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// ExtraCost costo adicional detallado (embalaje, pintura, comisión...).
// Amount puede llegar como número, texto o faltar.
type ExtraCost struct {
	Amount any    `json:"amount"`
	Note   string `json:"note"`
}

// ExtraCosts lista de costos adicionales de producción o de venta.
type ExtraCosts []ExtraCost

// Total suma los montos normalizados; los montos inválidos cuentan como cero.
func (c ExtraCosts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(money.Normalize(item.Amount))
	}
	return total
}

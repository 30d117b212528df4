package entity

import "github.com/shopspring/decimal"

// VatRegime régimen de IVA; se usa solo para mostrar junto a las ventas.
type VatRegime struct {
	ID          string
	Name        string
	Rate        decimal.Decimal // porcentaje, ej. 21
	CountryCode *string
	Countries   string // lista libre de países
}

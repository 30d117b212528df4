package dto

import "github.com/shopspring/decimal"

// VatRegimeDTO régimen de IVA para mostrar.
type VatRegimeDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	CountryCode *string         `json:"country_code"`
	Countries   string          `json:"countries,omitempty"`
}

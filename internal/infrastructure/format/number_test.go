package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/print3d-api/internal/infrastructure/format"
)

func TestMoney_SeparadoresPorIdioma(t *testing.T) {
	d := decimal.RequireFromString("1234567.891")

	assert.Equal(t, "1,234,567.89 $", format.NewNumbers("en-US", "$").Money(d))
	assert.Equal(t, "1.234.567,89 €", format.NewNumbers("es", "€").Money(d))
	assert.Equal(t, "1.234.567,89", format.NewNumbers("es", "").Money(d))
}

func TestMoney_LocaleInvalidoUsaEspanol(t *testing.T) {
	d := decimal.RequireFromString("1234567.5")
	assert.Equal(t, "1.234.567,50", format.NewNumbers("@@", "").Money(d))
}

func TestQuantity(t *testing.T) {
	n := format.NewNumbers("en", "")
	assert.Equal(t, "2", n.Quantity(decimal.NewFromInt(2)))
	assert.Equal(t, "1.5", n.Quantity(decimal.RequireFromString("1.5")))
}

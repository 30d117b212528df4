// Package format da formato de presentación a montos y cantidades en los
// archivos exportados, según la configuración regional del negocio.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Numbers formateador de montos para un idioma y símbolo de moneda.
// El message.Printer se crea en cada llamada: no es seguro compartirlo entre goroutines.
type Numbers struct {
	tag    language.Tag
	symbol string
}

// NewNumbers interpreta locale (BCP 47, ej. "es", "es-ES", "en-US").
// Un locale inválido cae a español.
func NewNumbers(locale, currencySymbol string) Numbers {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return Numbers{tag: tag, symbol: currencySymbol}
}

// Money monto con dos decimales, separadores del idioma y símbolo.
func (n Numbers) Money(d decimal.Decimal) string {
	p := message.NewPrinter(n.tag)
	s := p.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
	if n.symbol == "" {
		return s
	}
	return s + " " + n.symbol
}

// Quantity cantidad sin decimales forzados (2 → "2", 1.5 → "1,5" en español).
func (n Numbers) Quantity(d decimal.Decimal) string {
	p := message.NewPrinter(n.tag)
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}

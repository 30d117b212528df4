// Package money convierte valores numéricos no confiables (texto, números,
// nulos) en montos decimales exactos.
//
// Las filas llegan desde el proveedor de datos con tipos heterogéneos: un
// costo puede venir como NUMERIC, como texto o faltar. Normalize es una función
// total: nunca falla y devuelve cero ante cualquier valor que no represente un
// número finito.
package money

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// One es la cantidad por defecto de una venta sin quantity_sold.
var One = decimal.NewFromInt(1)

// Normalize devuelve el valor como decimal, o cero si es nil, vacío o no es
// un número finito. Los negativos se conservan sin recortar.
func Normalize(v any) decimal.Decimal {
	d, ok := Parse(v)
	if !ok {
		return decimal.Zero
	}
	return d
}

// QuantityOr normaliza v y devuelve def cuando el resultado es cero
// (ausente, vacío, inválido o literalmente 0).
func QuantityOr(v any, def decimal.Decimal) decimal.Decimal {
	d := Normalize(v)
	if d.IsZero() {
		return def
	}
	return d
}

// Límites decimales del rango de un float64: por encima es infinito y por
// debajo del menor subnormal el valor se lee como 0.
const (
	maxMagnitude = 309
	minMagnitude = -324
)

var maxFloat = decimal.NewFromFloat(math.MaxFloat64)

// Parse intenta interpretar v como número finito. ok es false si v no es
// interpretable o excede el rango de un float64; en ese caso el decimal es cero.
func Parse(v any) (d decimal.Decimal, ok bool) {
	d, ok = parse(v)
	if !ok {
		return decimal.Zero, false
	}
	return bounded(d)
}

// bounded se decide por dígitos y exponente, sin expandir el valor.
func bounded(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, true
	}
	magnitude := int64(d.NumDigits()) + int64(d.Exponent())
	switch {
	case magnitude > maxMagnitude:
		return decimal.Zero, false
	case magnitude == maxMagnitude && d.Abs().GreaterThan(maxFloat):
		return decimal.Zero, false
	case magnitude < minMagnitude:
		return decimal.Zero, true
	}
	return d, true
}

func parse(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return val, true
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, false
		}
		return *val, true
	case decimal.NullDecimal:
		if !val.Valid {
			return decimal.Zero, false
		}
		return val.Decimal, true
	case string:
		return parseString(val)
	case *string:
		if val == nil {
			return decimal.Zero, false
		}
		return parseString(*val)
	case []byte:
		return parseString(string(val))
	case json.Number:
		return parseString(val.String())
	case float64:
		return fromFloat(val)
	case float32:
		return fromFloat(float64(val))
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int8:
		return decimal.NewFromInt(int64(val)), true
	case int16:
		return decimal.NewFromInt(int64(val)), true
	case int32:
		return decimal.NewFromInt32(val), true
	case int64:
		return decimal.NewFromInt(val), true
	case *int64:
		if val == nil {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(*val), true
	case uint:
		return fromUint(uint64(val)), true
	case uint8:
		return fromUint(uint64(val)), true
	case uint16:
		return fromUint(uint64(val)), true
	case uint32:
		return fromUint(uint64(val)), true
	case uint64:
		return fromUint(val), true
	default:
		return decimal.Zero, false
	}
}

func parseString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// Package sales agrega el libro de ventas en reportes: selección de rango de
// fechas, totales con reparto de beneficio, series diarias por canal y
// resumen por canal.
//
// Las funciones son puras: el instante actual siempre llega como argumento.
package sales

import (
	"strings"
	"time"
)

// Period símbolo de rango de fechas del reporte.
type Period string

const (
	PeriodLast7Days    Period = "last_7_days"
	PeriodLast30Days   Period = "last_30_days"
	PeriodCurrentMonth Period = "current_month"
	PeriodLastMonth    Period = "last_month"
	PeriodCustom       Period = "custom"
)

// DefaultPeriod se usa para símbolos desconocidos o vacíos.
const DefaultPeriod = PeriodLast30Days

// ParsePeriod interpreta el símbolo recibido; desconocido → DefaultPeriod.
func ParsePeriod(s string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodLast7Days, PeriodLast30Days, PeriodCurrentMonth, PeriodLastMonth, PeriodCustom:
		return p
	default:
		return DefaultPeriod
	}
}

// Range intervalo [Start, End] inclusivo. Un extremo nil no limita ese lado.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Contains indica si t cae dentro del rango (ambos extremos inclusivos).
func (r Range) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// ResolveRange convierte el período en instantes concretos relativos a now,
// usando el día de calendario de now.Location().
//
//	last_7_days    hoy-6 00:00          → hoy fin del día
//	last_30_days   hoy-29 00:00         → hoy fin del día
//	current_month  día 1 00:00          → hoy fin del día
//	last_month     día 1 mes anterior   → último día mes anterior fin del día
//	custom         customStart (o nil)  → customEnd (o nil)
//
// "Fin del día" es el último instante representable (23:59:59.999999999).
func ResolveRange(p Period, customStart, customEnd *time.Time, now time.Time) Range {
	y, m, d := now.Date()
	loc := now.Location()

	switch p {
	case PeriodCustom:
		return Range{Start: copyTime(customStart), End: copyTime(customEnd)}
	case PeriodLast7Days:
		return newRange(startOfDay(y, m, d-6, loc), endOfDay(y, m, d, loc))
	case PeriodCurrentMonth:
		return newRange(startOfDay(y, m, 1, loc), endOfDay(y, m, d, loc))
	case PeriodLastMonth:
		// día 0 del mes actual = último día del mes anterior
		return newRange(startOfDay(y, m-1, 1, loc), endOfDay(y, m, 0, loc))
	default:
		return newRange(startOfDay(y, m, d-29, loc), endOfDay(y, m, d, loc))
	}
}

func startOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}

func newRange(start, end time.Time) Range {
	return Range{Start: &start, End: &end}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// DayBounds primer y último instante del día de calendario de t en su zona.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	return startOfDay(y, m, d, t.Location()), endOfDay(y, m, d, t.Location())
}

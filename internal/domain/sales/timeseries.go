package sales

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// UnknownChannel etiqueta para ventas sin canal; se cuentan, no se descartan.
const UnknownChannel = "Unknown"

const dayKeyLayout = "2006-01-02"

// ChannelTally acumulado de un canal en un día.
// Count suma la cantidad vendida (1 por defecto), igual que Totals.TotalSales.
type ChannelTally struct {
	Channel string
	Count   decimal.Decimal
	Revenue decimal.Decimal
}

// DayBucket ventas de un día (fecha UTC) agrupadas por canal.
type DayBucket struct {
	Date     string // YYYY-MM-DD en UTC
	Channels []ChannelTally
	Count    decimal.Decimal
	Revenue  decimal.Decimal
}

// Bucketize agrupa las ventas por día UTC y canal. Los días salen en orden
// ascendente y los canales de cada día en orden alfabético.
// Las ventas sin sold_at no tienen día y se ignoran.
func Bucketize(records []entity.SaleRecord) []DayBucket {
	byDay := make(map[string]map[string]*ChannelTally)

	for _, s := range records {
		if s.SoldAt == nil {
			continue
		}
		day := s.SoldAt.UTC().Format(dayKeyLayout)
		channels, ok := byDay[day]
		if !ok {
			channels = make(map[string]*ChannelTally)
			byDay[day] = channels
		}

		label := ChannelLabel(s)
		tally, ok := channels[label]
		if !ok {
			tally = &ChannelTally{Channel: label, Count: decimal.Zero, Revenue: decimal.Zero}
			channels[label] = tally
		}
		tally.Count = tally.Count.Add(s.Quantity())
		tally.Revenue = tally.Revenue.Add(money.Normalize(s.Revenue))
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	// YYYY-MM-DD ordena lexicográficamente igual que cronológicamente
	sort.Strings(days)

	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		b := DayBucket{Date: day, Count: decimal.Zero, Revenue: decimal.Zero}
		for _, tally := range byDay[day] {
			b.Channels = append(b.Channels, *tally)
			b.Count = b.Count.Add(tally.Count)
			b.Revenue = b.Revenue.Add(tally.Revenue)
		}
		sort.Slice(b.Channels, func(i, j int) bool {
			return b.Channels[i].Channel < b.Channels[j].Channel
		})
		buckets = append(buckets, b)
	}
	return buckets
}

// ChannelLabel canal de la venta, o UnknownChannel si está vacío.
func ChannelLabel(s entity.SaleRecord) string {
	if c := s.Channel(); c != "" {
		return c
	}
	return UnknownChannel
}

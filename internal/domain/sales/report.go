package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// Ratios por defecto del reparto de beneficio (regla de negocio).
var (
	DefaultProducerRatio = decimal.RequireFromString("0.6")
	DefaultSellerRatio   = decimal.RequireFromString("0.4")
)

// SplitPolicy reparto del beneficio entre productor y vendedor.
// El productor recupera además el costo base de producción completo.
type SplitPolicy struct {
	ProducerRatio decimal.Decimal
	SellerRatio   decimal.Decimal
}

// DefaultSplitPolicy 60 % productor / 40 % vendedor.
func DefaultSplitPolicy() SplitPolicy {
	return SplitPolicy{ProducerRatio: DefaultProducerRatio, SellerRatio: DefaultSellerRatio}
}

func (p SplitPolicy) orDefault() SplitPolicy {
	if p.ProducerRatio.IsZero() && p.SellerRatio.IsZero() {
		return DefaultSplitPolicy()
	}
	return p
}

// Split calcula las partes:
//
//	producerShare = totalProfit × ProducerRatio + totalProductionCost
//	sellerShare   = totalProfit × SellerRatio
func (p SplitPolicy) Split(totalProfit, totalProductionCost decimal.Decimal) (producer, seller decimal.Decimal) {
	p = p.orDefault()
	producer = totalProfit.Mul(p.ProducerRatio).Add(totalProductionCost)
	seller = totalProfit.Mul(p.SellerRatio)
	return producer, seller
}

// Totals totales del reporte de ventas.
type Totals struct {
	TotalSales          decimal.Decimal // unidades vendidas
	TotalRevenue        decimal.Decimal
	TotalCost           decimal.Decimal
	TotalProductionCost decimal.Decimal
	TotalProfit         decimal.Decimal
	ProducerShare       decimal.Decimal
	SellerShare         decimal.Decimal
}

// FilterByRange conserva las ventas con sold_at dentro del rango.
// Las ventas sin sold_at se descartan siempre.
func FilterByRange(records []entity.SaleRecord, r Range) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(records))
	for _, s := range records {
		if s.SoldAt == nil || !r.Contains(*s.SoldAt) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Aggregate filtra por rango y suma:
//
//	totalSales          += cantidad
//	totalRevenue        += revenue
//	totalCost           += total_costs × cantidad
//	totalProductionCost += production_cost_base × cantidad
//	totalProfit         += profit   (ya totalizado, no se multiplica)
//
// El profit de cada fila es autoritativo: no se recalcula desde ingresos y costos.
func Aggregate(records []entity.SaleRecord, r Range, policy SplitPolicy) Totals {
	t := Totals{
		TotalSales:          decimal.Zero,
		TotalRevenue:        decimal.Zero,
		TotalCost:           decimal.Zero,
		TotalProductionCost: decimal.Zero,
		TotalProfit:         decimal.Zero,
	}

	for _, s := range FilterByRange(records, r) {
		qty := s.Quantity()
		t.TotalSales = t.TotalSales.Add(qty)
		t.TotalRevenue = t.TotalRevenue.Add(money.Normalize(s.Revenue))
		t.TotalCost = t.TotalCost.Add(money.Normalize(s.TotalCosts).Mul(qty))
		t.TotalProductionCost = t.TotalProductionCost.Add(money.Normalize(s.ProductionCostBase).Mul(qty))
		t.TotalProfit = t.TotalProfit.Add(money.Normalize(s.Profit))
	}

	t.ProducerShare, t.SellerShare = policy.Split(t.TotalProfit, t.TotalProductionCost)
	return t
}

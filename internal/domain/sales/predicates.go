package sales

import (
	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/filter"
)

// ChannelIs ventas del canal indicado (sin distinguir caja). Vacío = sin filtro.
// "Unknown" selecciona las ventas sin canal.
func ChannelIs(channel string) filter.Predicate[entity.SaleRecord] {
	want := filter.Fold(channel)
	if want == "" {
		return nil
	}
	return func(s entity.SaleRecord) bool {
		return filter.Fold(ChannelLabel(s)) == want
	}
}

// MatchesText búsqueda libre sobre producto, canal y notas de costos extra.
func MatchesText(q string) filter.Predicate[entity.SaleRecord] {
	if filter.Fold(q) == "" {
		return nil
	}
	return func(s entity.SaleRecord) bool {
		if filter.ContainsFold(s.ProductName, q) || filter.ContainsFold(ChannelLabel(s), q) {
			return true
		}
		for _, c := range s.ExtraCosts {
			if filter.ContainsFold(c.Note, q) {
				return true
			}
		}
		for _, c := range s.ProductionExtraCosts {
			if filter.ContainsFold(c.Note, q) {
				return true
			}
		}
		return false
	}
}

// SoldWithin ventas con sold_at dentro del rango.
func SoldWithin(r Range) filter.Predicate[entity.SaleRecord] {
	return func(s entity.SaleRecord) bool {
		return s.SoldAt != nil && r.Contains(*s.SoldAt)
	}
}

package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// QueueItem una unidad pendiente o en impresión, lista para mostrar.
type QueueItem struct {
	UnitID     string
	Name       string
	Photo      string
	Status     entity.UnitStatus
	Quantity   decimal.Decimal
	QueueOrder *decimal.Decimal // nil si la fila no tiene orden
	Colors     []ColorSwatch    // vacío (no nil) = "sin color"
}

// MaterialsByID indexa el catálogo de materiales por ID.
func MaterialsByID(materials []entity.Material) map[string]entity.Material {
	out := make(map[string]entity.Material, len(materials))
	for _, m := range materials {
		out[m.ID] = m
	}
	return out
}

// SummarizeQueue resume la cola de impresión con la cadena de colores por defecto.
func SummarizeQueue(units []entity.InventoryUnit, materials map[string]entity.Material) []QueueItem {
	return SummarizeQueueWith(units, materials, DefaultColorResolvers())
}

// SummarizeQueueWith filtra unidades en cola o imprimiendo, las ordena por
// queue_order ascendente (sin orden al final) y resuelve sus colores.
func SummarizeQueueWith(units []entity.InventoryUnit, materials map[string]entity.Material, chain []ColorResolver) []QueueItem {
	type ranked struct {
		unit  entity.InventoryUnit
		order decimal.Decimal
		has   bool
	}

	pending := make([]ranked, 0, len(units))
	for _, u := range units {
		if u.Status != entity.StatusQueued && u.Status != entity.StatusPrinting {
			continue
		}
		order, ok := money.Parse(u.QueueOrder)
		pending = append(pending, ranked{unit: u, order: order, has: ok})
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if a.has != b.has {
			return a.has
		}
		return a.has && a.order.LessThan(b.order)
	})

	items := make([]QueueItem, 0, len(pending))
	for _, p := range pending {
		item := QueueItem{
			UnitID:   p.unit.ID,
			Name:     p.unit.Model.Name,
			Photo:    p.unit.Model.PhotoURL,
			Status:   p.unit.Status,
			Quantity: money.Normalize(p.unit.Quantity),
			Colors:   ResolveColors(p.unit, materials, chain),
		}
		if p.has {
			order := p.order
			item.QueueOrder = &order
		}
		items = append(items, item)
	}
	return items
}

// Package inventory contiene los servicios de dominio sobre el inventario de
// impresión: costo unitario, valoración del almacén y resumen de la cola.
//
// Todas las funciones son puras: reciben filas ya cargadas y no hacen I/O.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// UnitCost costo completo de una unidad (por unidad, sin multiplicar por cantidad).
// UnitCost = costo base de producción + Σ costos extra de producción
func UnitCost(u entity.InventoryUnit) decimal.Decimal {
	return money.Normalize(u.ProductionCost).Add(u.ProductionExtraCosts.Total())
}

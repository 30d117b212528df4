package entity

import "time"

// UnitStatus estado de una unidad de inventario a lo largo de su ciclo de vida.
type UnitStatus string

// Estados de una unidad: en cola → imprimiendo → disponible → vendida.
const (
	StatusQueued    UnitStatus = "queued"
	StatusPrinting  UnitStatus = "printing"
	StatusAvailable UnitStatus = "available"
	StatusSold      UnitStatus = "sold"
)

// InventoryUnit representa una fila de la tabla products: una unidad (o lote)
// fabricada de un modelo.
//
// Los campos numéricos se guardan tal como llegan del proveedor de datos
// (NUMERIC, texto o nil) y se interpretan con money.Normalize en el momento
// del cálculo.
type InventoryUnit struct {
	ID                   string
	Status               UnitStatus
	Quantity             any
	ProductionCost       any
	ProductionExtraCosts ExtraCosts
	SalePrice            any
	MaterialID           *string
	Material             *Material // join opcional materials
	MultimaterialMapping MultimaterialMapping
	QueueOrder           any
	Model                ModelRef
	CreatedAt            time.Time
}

// ModelRef datos del modelo 3D unidos a la unidad (models.name, models.photo_url).
type ModelRef struct {
	ID       string
	Name     string
	PhotoURL string
}

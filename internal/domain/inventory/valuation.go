package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// Valuation cifras de valoración del almacén.
//
// ProductionValue responde "cuánto dinero ya se gastó" (en cola + disponible);
// SaleValue responde "cuánto se recupera vendiendo el stock actual" (solo disponible).
type Valuation struct {
	ProductionValue decimal.Decimal
	SaleValue       decimal.Decimal
	QueuedQty       decimal.Decimal
	PrintingQty     decimal.Decimal
	AvailableQty    decimal.Decimal
	SoldQty         decimal.Decimal // desde el libro de ventas
}

// Valuate agrega costo y precio de venta sobre las unidades.
// Las unidades vendidas salen de la tabla de productos, por eso SoldQty se
// calcula sobre las ventas con fecha (sold_at) y no sobre el estado.
func Valuate(units []entity.InventoryUnit, sales []entity.SaleRecord) Valuation {
	v := Valuation{
		ProductionValue: decimal.Zero,
		SaleValue:       decimal.Zero,
		QueuedQty:       decimal.Zero,
		PrintingQty:     decimal.Zero,
		AvailableQty:    decimal.Zero,
		SoldQty:         decimal.Zero,
	}

	for _, u := range units {
		qty := money.Normalize(u.Quantity)
		switch u.Status {
		case entity.StatusQueued:
			v.QueuedQty = v.QueuedQty.Add(qty)
			v.ProductionValue = v.ProductionValue.Add(UnitCost(u).Mul(qty))
		case entity.StatusAvailable:
			v.AvailableQty = v.AvailableQty.Add(qty)
			v.ProductionValue = v.ProductionValue.Add(UnitCost(u).Mul(qty))
			v.SaleValue = v.SaleValue.Add(money.Normalize(u.SalePrice).Mul(qty))
		case entity.StatusPrinting:
			v.PrintingQty = v.PrintingQty.Add(qty)
		}
	}

	for _, s := range sales {
		if s.SoldAt == nil {
			continue
		}
		v.SoldQty = v.SoldQty.Add(s.Quantity())
	}
	return v
}

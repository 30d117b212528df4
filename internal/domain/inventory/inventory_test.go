package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

// ── UnitCost ──────────────────────────────────────────────────────────────────

func TestUnitCost_SumaBaseYExtras(t *testing.T) {
	u := entity.InventoryUnit{
		ProductionCost:       10,
		ProductionExtraCosts: entity.ExtraCosts{{Amount: 2}, {Amount: "3.5"}},
	}
	assert.True(t, dec("15.5").Equal(inventory.UnitCost(u)))
}

func TestUnitCost_SinCostos(t *testing.T) {
	u := entity.InventoryUnit{ProductionCost: 0, ProductionExtraCosts: entity.ExtraCosts{}}
	assert.True(t, inventory.UnitCost(u).IsZero())
	assert.True(t, inventory.UnitCost(entity.InventoryUnit{}).IsZero(), "fila sin campos debe costar 0")
}

func TestUnitCost_NoMultiplicaPorCantidad(t *testing.T) {
	u := entity.InventoryUnit{ProductionCost: "4", Quantity: 10}
	assert.True(t, dec("4").Equal(inventory.UnitCost(u)))
}

// ── Valuate ───────────────────────────────────────────────────────────────────

func TestValuate_ProduccionYVenta(t *testing.T) {
	units := []entity.InventoryUnit{
		{Status: entity.StatusQueued, ProductionCost: 5, Quantity: 2},
		{Status: entity.StatusAvailable, ProductionCost: 3, SalePrice: 20, Quantity: 1},
	}
	v := inventory.Valuate(units, nil)

	assert.True(t, dec("13").Equal(v.ProductionValue), "5*2 + 3*1")
	assert.True(t, dec("20").Equal(v.SaleValue))
	assert.True(t, dec("2").Equal(v.QueuedQty))
	assert.True(t, dec("1").Equal(v.AvailableQty))
	assert.True(t, v.PrintingQty.IsZero())
	assert.True(t, v.SoldQty.IsZero())
}

func TestValuate_ImprimiendoNoSumaValor(t *testing.T) {
	units := []entity.InventoryUnit{
		{Status: entity.StatusPrinting, ProductionCost: 7, SalePrice: 30, Quantity: 3},
		{Status: entity.StatusSold, ProductionCost: 7, SalePrice: 30, Quantity: 1},
	}
	v := inventory.Valuate(units, nil)

	assert.True(t, v.ProductionValue.IsZero())
	assert.True(t, v.SaleValue.IsZero())
	assert.True(t, dec("3").Equal(v.PrintingQty))
}

func TestValuate_VendidosDesdeLibroDeVentas(t *testing.T) {
	soldAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	sales := []entity.SaleRecord{
		{SoldAt: &soldAt, QuantitySold: 2},
		{SoldAt: &soldAt},             // cantidad ausente = 1
		{QuantitySold: 5, Revenue: 9}, // sin sold_at: excluida
	}
	v := inventory.Valuate(nil, sales)
	assert.True(t, dec("3").Equal(v.SoldQty))
}

func TestValuate_CantidadAusenteEsCero(t *testing.T) {
	units := []entity.InventoryUnit{{Status: entity.StatusAvailable, ProductionCost: 3, SalePrice: 9}}
	v := inventory.Valuate(units, nil)
	assert.True(t, v.ProductionValue.IsZero())
	assert.True(t, v.AvailableQty.IsZero())
}

func TestValuate_EntradaVaciaYRepetible(t *testing.T) {
	empty := inventory.Valuate(nil, nil)
	assert.True(t, empty.ProductionValue.IsZero())
	assert.True(t, empty.SaleValue.IsZero())

	units := []entity.InventoryUnit{{Status: entity.StatusAvailable, ProductionCost: "2.5", SalePrice: "8", Quantity: 4}}
	assert.Equal(t, inventory.Valuate(units, nil), inventory.Valuate(units, nil))
}

// ── SummarizeQueue ───────────────────────────────────────────────────────────

func catalog() map[string]entity.Material {
	return inventory.MaterialsByID([]entity.Material{
		{ID: "red", Color: "Rojo", ColorHex: "#FF0000"},
		{ID: "blue", Color: "Azul", ColorHex: "#0000FF"},
		{ID: "bad", Color: "Sin hex", ColorHex: "azul"},
	})
}

func TestSummarizeQueue_AsignacionGanaSobreMaterialUnido(t *testing.T) {
	u := entity.InventoryUnit{
		Status:   entity.StatusQueued,
		Material: &entity.Material{ID: "red", Color: "Rojo", ColorHex: "#FF0000"},
		MultimaterialMapping: entity.MultimaterialMapping{
			{Slot: "2", MaterialID: "red"},
			{Slot: 1, MaterialID: "blue"},
		},
	}
	items := inventory.SummarizeQueue([]entity.InventoryUnit{u}, catalog())

	require.Len(t, items, 1)
	require.Len(t, items[0].Colors, 2)
	assert.Equal(t, "blue", items[0].Colors[0].MaterialID, "slot 1 primero")
	assert.Equal(t, "red", items[0].Colors[1].MaterialID)
}

func TestSummarizeQueue_AsignacionSinResolverNoCaeAlSiguienteNivel(t *testing.T) {
	u := entity.InventoryUnit{
		Status:               entity.StatusQueued,
		Material:             &entity.Material{ID: "red", Color: "Rojo"},
		MultimaterialMapping: entity.MultimaterialMapping{{Slot: 1, MaterialID: "desconocido"}},
	}
	items := inventory.SummarizeQueue([]entity.InventoryUnit{u}, catalog())

	require.Len(t, items, 1)
	assert.NotNil(t, items[0].Colors)
	assert.Empty(t, items[0].Colors)
}

func TestSummarizeQueue_MaterialUnidoAntesQueReferencia(t *testing.T) {
	u := entity.InventoryUnit{
		Status:     entity.StatusPrinting,
		Material:   &entity.Material{ID: "red", Color: "Rojo", ColorHex: "#FF0000"},
		MaterialID: strPtr("blue"),
	}
	items := inventory.SummarizeQueue([]entity.InventoryUnit{u}, catalog())

	require.Len(t, items[0].Colors, 1)
	assert.Equal(t, "Rojo", items[0].Colors[0].Name)
}

func TestSummarizeQueue_ReferenciaYSinColor(t *testing.T) {
	units := []entity.InventoryUnit{
		{ID: "a", Status: entity.StatusQueued, MaterialID: strPtr("bad"), QueueOrder: 1},
		{ID: "b", Status: entity.StatusQueued, MaterialID: strPtr("no-existe"), QueueOrder: 2},
		{ID: "c", Status: entity.StatusQueued, QueueOrder: 3},
	}
	items := inventory.SummarizeQueue(units, catalog())

	require.Len(t, items, 3)
	require.Len(t, items[0].Colors, 1)
	assert.Equal(t, "Sin hex", items[0].Colors[0].Name)
	assert.Empty(t, items[0].Colors[0].Hex, "hex inválido no se expone")
	assert.Empty(t, items[1].Colors)
	assert.Empty(t, items[2].Colors)
}

func TestSummarizeQueue_FiltraYOrdena(t *testing.T) {
	units := []entity.InventoryUnit{
		{ID: "sin-orden", Status: entity.StatusQueued},
		{ID: "disponible", Status: entity.StatusAvailable, QueueOrder: 0},
		{ID: "tercero", Status: entity.StatusQueued, QueueOrder: "10"},
		{ID: "primero", Status: entity.StatusPrinting, QueueOrder: 1},
		{ID: "segundo", Status: entity.StatusQueued, QueueOrder: 2},
	}
	items := inventory.SummarizeQueue(units, nil)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.UnitID)
	}
	assert.Equal(t, []string{"primero", "segundo", "tercero", "sin-orden"}, ids)
	assert.Nil(t, items[3].QueueOrder)
}

func TestSummarizeQueue_CadenaPersonalizada(t *testing.T) {
	always := inventory.ColorResolverFunc(func(entity.InventoryUnit, map[string]entity.Material) ([]inventory.ColorSwatch, bool) {
		return []inventory.ColorSwatch{{Name: "fijo"}}, true
	})
	u := entity.InventoryUnit{Status: entity.StatusQueued, MaterialID: strPtr("red")}
	items := inventory.SummarizeQueueWith([]entity.InventoryUnit{u}, catalog(), []inventory.ColorResolver{always})

	require.Len(t, items[0].Colors, 1)
	assert.Equal(t, "fijo", items[0].Colors[0].Name)
}

func TestSummarizeQueue_Vacio(t *testing.T) {
	items := inventory.SummarizeQueue(nil, nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// Package analytics contiene los casos de uso del panel de producción y del
// reporte de ventas. Carga las filas desde los repositorios y delega todo el
// cálculo en los paquetes de dominio inventory y sales.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/domain"
	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/inventory"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

// DashboardUseCase genera la valoración del almacén y la cola de impresión.
type DashboardUseCase struct {
	products  repository.ProductRepository
	materials repository.MaterialRepository
	sales     repository.SaleRepository
	colors    []inventory.ColorResolver
}

// NewDashboardUseCase construye el caso de uso con la cadena de colores por defecto.
func NewDashboardUseCase(
	products repository.ProductRepository,
	materials repository.MaterialRepository,
	sales repository.SaleRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		products:  products,
		materials: materials,
		sales:     sales,
		colors:    inventory.DefaultColorResolvers(),
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo (productos, materiales, ventas); si alguna falla
// se devuelve ErrDataSource sin invocar el cálculo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Int("products", len(snap.units)).
		Int("materials", len(snap.materials)).
		Int("sales", len(snap.sales)).
		Msg("dashboard: filas cargadas")

	// ── Cálculo ────────────────────────────────────────────────────────────────
	val := inventory.Valuate(snap.units, snap.sales)
	queue := inventory.SummarizeQueueWith(snap.units, inventory.MaterialsByID(snap.materials), uc.colors)

	return &dto.DashboardSummaryDTO{
		ProductionValue: val.ProductionValue.Round(2),
		SaleValue:       val.SaleValue.Round(2),
		QueuedQty:       val.QueuedQty,
		PrintingQty:     val.PrintingQty,
		AvailableQty:    val.AvailableQty,
		SoldQty:         val.SoldQty,
		MaterialsCount:  len(snap.materials),
		Queue:           toQueueDTOs(queue),
		GeneratedAt:     now.Format(time.RFC3339),
	}, nil
}

type dashboardSnapshot struct {
	units     []entity.InventoryUnit
	materials []entity.Material
	sales     []entity.SaleRecord
}

func (uc *DashboardUseCase) load(ctx context.Context) (dashboardSnapshot, error) {
	type unitsResult struct {
		rows []entity.InventoryUnit
		err  error
	}
	type materialsResult struct {
		rows []entity.Material
		err  error
	}
	type salesResult struct {
		rows []entity.SaleRecord
		err  error
	}

	unitsCh := make(chan unitsResult, 1)
	materialsCh := make(chan materialsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		rows, err := uc.products.ListForAnalytics(ctx)
		unitsCh <- unitsResult{rows, err}
	}()
	go func() {
		rows, err := uc.materials.List(ctx)
		materialsCh <- materialsResult{rows, err}
	}()
	go func() {
		rows, err := uc.sales.List(ctx)
		salesCh <- salesResult{rows, err}
	}()

	units := <-unitsCh
	materials := <-materialsCh
	sales := <-salesCh

	if units.err != nil {
		return dashboardSnapshot{}, fmt.Errorf("dashboard: productos: %w: %w", domain.ErrDataSource, units.err)
	}
	if materials.err != nil {
		return dashboardSnapshot{}, fmt.Errorf("dashboard: materiales: %w: %w", domain.ErrDataSource, materials.err)
	}
	if sales.err != nil {
		return dashboardSnapshot{}, fmt.Errorf("dashboard: ventas: %w: %w", domain.ErrDataSource, sales.err)
	}
	return dashboardSnapshot{units: units.rows, materials: materials.rows, sales: sales.rows}, nil
}

func toQueueDTOs(items []inventory.QueueItem) []dto.QueueItemDTO {
	out := make([]dto.QueueItemDTO, 0, len(items))
	for _, it := range items {
		colors := make([]dto.ColorDTO, 0, len(it.Colors))
		for _, c := range it.Colors {
			colors = append(colors, dto.ColorDTO{MaterialID: c.MaterialID, Name: c.Name, Hex: c.Hex})
		}
		out = append(out, dto.QueueItemDTO{
			UnitID:     it.UnitID,
			Name:       it.Name,
			Photo:      it.Photo,
			Status:     string(it.Status),
			Quantity:   it.Quantity,
			QueueOrder: it.QueueOrder,
			Colors:     colors,
		})
	}
	return out
}

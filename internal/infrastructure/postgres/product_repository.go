package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura de unidades de inventario sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de lectura de products. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListForAnalytics devuelve todas las unidades con el modelo y el material unidos.
// Las columnas numéricas se leen sin tipar; las interpreta el motor de análisis.
func (r *ProductRepo) ListForAnalytics(ctx context.Context) ([]entity.InventoryUnit, error) {
	query := `
		SELECT p.id::text, COALESCE(p.status, ''), p.quantity, p.production_cost,
		       p.production_extra_costs, p.sale_price, p.material_id::text,
		       p.multimaterial_mapping, p.queue_order, p.created_at,
		       COALESCE(m.id::text, ''), COALESCE(m.name, ''), COALESCE(m.photo_url, ''),
		       mat.id::text, COALESCE(mat.color, ''), COALESCE(mat.color_hex, '')
		FROM products p
		LEFT JOIN models m ON m.id = p.model_id
		LEFT JOIN materials mat ON mat.id = p.material_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products.ListForAnalytics: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryUnit
	for rows.Next() {
		var (
			u                    entity.InventoryUnit
			status               string
			extraRaw, mappingRaw []byte
			createdAt            *time.Time
			matID                *string
			matColor, matHex     string
		)
		if err := rows.Scan(
			&u.ID, &status, &u.Quantity, &u.ProductionCost,
			&extraRaw, &u.SalePrice, &u.MaterialID,
			&mappingRaw, &u.QueueOrder, &createdAt,
			&u.Model.ID, &u.Model.Name, &u.Model.PhotoURL,
			&matID, &matColor, &matHex,
		); err != nil {
			return nil, fmt.Errorf("products.ListForAnalytics scan: %w", err)
		}
		u.Status = entity.UnitStatus(status)
		u.ProductionExtraCosts = decodeExtraCosts(extraRaw, "production_extra_costs", u.ID)
		u.MultimaterialMapping = decodeMapping(mappingRaw)
		if createdAt != nil {
			u.CreatedAt = *createdAt
		}
		if matID != nil {
			u.Material = &entity.Material{ID: *matID, Color: matColor, ColorHex: matHex}
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products.ListForAnalytics: %w", err)
	}
	return list, nil
}

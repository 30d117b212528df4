package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo libro de ventas sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de lectura de sales.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// List devuelve el libro completo, más recientes primero. El nombre del
// producto sale del modelo de la unidad vendida (si aún existe).
func (r *SaleRepo) List(ctx context.Context) ([]entity.SaleRecord, error) {
	query := `
		SELECT s.id::text, COALESCE(s.product_id::text, ''), COALESCE(m.name, ''),
		       s.sold_at, s.quantity_sold, s.revenue, s.total_costs,
		       s.production_cost_base, s.profit, COALESCE(s.sales_channel, ''),
		       s.production_extra_costs, s.extra_costs
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN models m ON m.id = p.model_id
		ORDER BY s.sold_at DESC NULLS LAST`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales.List: %w", err)
	}
	defer rows.Close()

	var list []entity.SaleRecord
	for rows.Next() {
		var (
			s                  entity.SaleRecord
			prodExtra, saleExt []byte
		)
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.ProductName,
			&s.SoldAt, &s.QuantitySold, &s.Revenue, &s.TotalCosts,
			&s.ProductionCostBase, &s.Profit, &s.SalesChannel,
			&prodExtra, &saleExt,
		); err != nil {
			return nil, fmt.Errorf("sales.List scan: %w", err)
		}
		s.ProductionExtraCosts = decodeExtraCosts(prodExtra, "production_extra_costs", s.ID)
		s.ExtraCosts = decodeExtraCosts(saleExt, "extra_costs", s.ID)
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.List: %w", err)
	}
	return list, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo catálogo de materiales sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de lectura de materials.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// List devuelve todos los materiales ordenados por color.
func (r *MaterialRepo) List(ctx context.Context) ([]entity.Material, error) {
	query := `
		SELECT id::text, COALESCE(color, ''), COALESCE(color_hex, '')
		FROM materials
		ORDER BY color`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("materials.List: %w", err)
	}
	defer rows.Close()

	var list []entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Color, &m.ColorHex); err != nil {
			return nil, fmt.Errorf("materials.List scan: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

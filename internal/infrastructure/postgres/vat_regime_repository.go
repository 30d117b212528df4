package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

var _ repository.VatRegimeRepository = (*VatRegimeRepo)(nil)

// VatRegimeRepo regímenes de IVA sobre PostgreSQL.
type VatRegimeRepo struct {
	q Querier
}

// NewVatRegimeRepository construye el adaptador de lectura de vat_regimes.
func NewVatRegimeRepository(q Querier) *VatRegimeRepo {
	return &VatRegimeRepo{q: q}
}

// List devuelve los regímenes ordenados por nombre.
func (r *VatRegimeRepo) List(ctx context.Context) ([]entity.VatRegime, error) {
	query := `
		SELECT id::text, COALESCE(name, ''), rate, country_code, COALESCE(countries, '')
		FROM vat_regimes
		ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vat_regimes.List: %w", err)
	}
	defer rows.Close()

	var list []entity.VatRegime
	for rows.Next() {
		var (
			v    entity.VatRegime
			rate decimal.NullDecimal
		)
		if err := rows.Scan(&v.ID, &v.Name, &rate, &v.CountryCode, &v.Countries); err != nil {
			return nil, fmt.Errorf("vat_regimes.List scan: %w", err)
		}
		if rate.Valid {
			v.Rate = rate.Decimal
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

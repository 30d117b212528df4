package repository

import (
	"context"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

// VatRegimeRepository regímenes de IVA para mostrar.
type VatRegimeRepository interface {
	List(ctx context.Context) ([]entity.VatRegime, error)
}

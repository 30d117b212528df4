package repository

import (
	"context"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

// MaterialRepository catálogo de materiales.
type MaterialRepository interface {
	List(ctx context.Context) ([]entity.Material, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

// ProductRepository lectura de la tabla products con sus joins (models, materials).
// Solo lectura: el alta y edición de unidades pertenece al colaborador CRUD.
type ProductRepository interface {
	// ListForAnalytics devuelve todas las unidades con modelo y material unidos.
	ListForAnalytics(ctx context.Context) ([]entity.InventoryUnit, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

// SaleRepository libro de ventas completo; el filtrado por fecha lo hace el motor.
type SaleRepository interface {
	List(ctx context.Context) ([]entity.SaleRecord, error)
}

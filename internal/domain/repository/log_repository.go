package repository

import (
	"context"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

// LogRepository lectura de la tabla logs (más recientes primero).
type LogRepository interface {
	List(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

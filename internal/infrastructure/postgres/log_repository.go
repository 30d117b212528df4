package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo lectura de la tabla logs.
type LogRepo struct {
	q Querier
}

// NewLogRepository construye el adaptador de lectura de logs.
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// List devuelve hasta limit registros, más recientes primero.
func (r *LogRepo) List(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	query := `
		SELECT id::text, created_at, COALESCE(user_email, ''), COALESCE(action, ''),
		       COALESCE(table_name, ''), COALESCE(record_id::text, ''), details
		FROM logs
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("logs.List: %w", err)
	}
	defer rows.Close()

	var list []entity.AuditLog
	for rows.Next() {
		var (
			l       entity.AuditLog
			details []byte
		)
		if err := rows.Scan(&l.ID, &l.CreatedAt, &l.UserEmail, &l.Action, &l.TableName, &l.RecordID, &details); err != nil {
			return nil, fmt.Errorf("logs.List scan: %w", err)
		}
		if len(details) > 0 {
			l.Details = details
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

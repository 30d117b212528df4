package dto

import (
	"encoding/json"
	"time"
)

// LogListRequest parámetros de GET /api/logs.
type LogListRequest struct {
	User   string `query:"user" validate:"max=200"`
	Action string `query:"action" validate:"max=20"`
	Table  string `query:"table" validate:"max=100"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Limit  int    `query:"limit" validate:"min=0,max=1000"`
}

// DefaultLimit aplica el límite por defecto si no viene informado.
func (r *LogListRequest) DefaultLimit() {
	if r.Limit <= 0 {
		r.Limit = 500
	}
}

// LogEntryDTO fila del visor de registros.
type LogEntryDTO struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UserEmail string          `json:"user_email"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// LogListResponse listado filtrado.
type LogListResponse struct {
	Items []LogEntryDTO `json:"items"`
	Total int           `json:"total"`
}

package entity

import (
	"encoding/json"
	"time"
)

// AuditLog fila de la tabla logs escrita por el colaborador CRUD.
// Este servicio solo la lee para el visor de registros.
type AuditLog struct {
	ID        string
	CreatedAt time.Time
	UserEmail string
	Action    string // insert | update | delete
	TableName string
	RecordID  string
	Details   json.RawMessage
}

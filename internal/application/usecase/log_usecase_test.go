package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/application/usecase"
	"github.com/jhoicas/print3d-api/internal/domain"
	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

type fakeLogs struct {
	rows      []entity.AuditLog
	err       error
	lastLimit int
}

func (f *fakeLogs) List(_ context.Context, limit int) ([]entity.AuditLog, error) {
	f.lastLimit = limit
	return f.rows, f.err
}

func logRows() []entity.AuditLog {
	return []entity.AuditLog{
		{ID: "1", CreatedAt: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), UserEmail: "Ana@Taller.com", Action: "insert", TableName: "products"},
		{ID: "2", CreatedAt: time.Date(2024, 3, 11, 23, 30, 0, 0, time.UTC), UserEmail: "luis@taller.com", Action: "UPDATE", TableName: "sales"},
		{ID: "3", CreatedAt: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), UserEmail: "ana@taller.com", Action: "delete", TableName: "sales"},
	}
}

func ids(resp *dto.LogListResponse) []string {
	out := make([]string, 0, len(resp.Items))
	for _, it := range resp.Items {
		out = append(out, it.ID)
	}
	return out
}

func TestLogUseCase_List_LimitePorDefecto(t *testing.T) {
	repo := &fakeLogs{rows: logRows()}
	resp, err := usecase.NewLogUseCase(repo).List(context.Background(), dto.LogListRequest{}, nil)

	require.NoError(t, err)
	assert.Equal(t, 500, repo.lastLimit)
	assert.Equal(t, 3, resp.Total)
}

func TestLogUseCase_List_FiltrosCombinados(t *testing.T) {
	uc := usecase.NewLogUseCase(&fakeLogs{rows: logRows()})

	resp, err := uc.List(context.Background(), dto.LogListRequest{User: "ANA"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(resp))

	resp, err = uc.List(context.Background(), dto.LogListRequest{Action: "update", Table: "SALES"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(resp))

	resp, err = uc.List(context.Background(), dto.LogListRequest{From: "2024-03-11", To: "2024-03-11"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(resp), "el día 'to' se incluye completo")
}

func TestLogUseCase_List_Errores(t *testing.T) {
	uc := usecase.NewLogUseCase(&fakeLogs{err: errors.New("timeout")})
	_, err := uc.List(context.Background(), dto.LogListRequest{}, time.UTC)
	assert.ErrorIs(t, err, domain.ErrDataSource)

	uc = usecase.NewLogUseCase(&fakeLogs{})
	_, err = uc.List(context.Background(), dto.LogListRequest{From: "ayer"}, time.UTC)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(context.Background(), dto.LogListRequest{From: "2024-03-12", To: "2024-03-11"}, time.UTC)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/domain"
	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/filter"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

const logDateLayout = "2006-01-02"

// LogUseCase visor de registros de auditoría (solo lectura).
type LogUseCase struct {
	repo repository.LogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.LogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// List lee los últimos registros y los filtra por usuario, acción, tabla y
// rango de fechas. Las fechas se interpretan como días completos en loc.
func (uc *LogUseCase) List(ctx context.Context, in dto.LogListRequest, loc *time.Location) (*dto.LogListResponse, error) {
	in.DefaultLimit()
	if loc == nil {
		loc = time.UTC
	}

	from, to, err := parseLogRange(in.From, in.To, loc)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.List(ctx, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("logs: %w: %w", domain.ErrDataSource, err)
	}

	match := filter.All(
		logUserContains(in.User),
		logFieldEquals(in.Action, func(l entity.AuditLog) string { return l.Action }),
		logFieldEquals(in.Table, func(l entity.AuditLog) string { return l.TableName }),
		logCreatedWithin(from, to),
	)
	kept := filter.Apply(rows, match)

	zerolog.Ctx(ctx).Debug().Int("read", len(rows)).Int("kept", len(kept)).Msg("logs: filtrados")

	items := make([]dto.LogEntryDTO, 0, len(kept))
	for _, l := range kept {
		items = append(items, dto.LogEntryDTO{
			ID:        l.ID,
			CreatedAt: l.CreatedAt,
			UserEmail: l.UserEmail,
			Action:    l.Action,
			TableName: l.TableName,
			RecordID:  l.RecordID,
			Details:   l.Details,
		})
	}
	return &dto.LogListResponse{Items: items, Total: len(items)}, nil
}

func parseLogRange(fromStr, toStr string, loc *time.Location) (from, to *time.Time, err error) {
	if s := strings.TrimSpace(fromStr); s != "" {
		t, perr := time.ParseInLocation(logDateLayout, s, loc)
		if perr != nil {
			return nil, nil, fmt.Errorf("from inválida (YYYY-MM-DD): %w", domain.ErrInvalidInput)
		}
		from = &t
	}
	if s := strings.TrimSpace(toStr); s != "" {
		t, perr := time.ParseInLocation(logDateLayout, s, loc)
		if perr != nil {
			return nil, nil, fmt.Errorf("to inválida (YYYY-MM-DD): %w", domain.ErrInvalidInput)
		}
		// día completo
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("from posterior a to: %w", domain.ErrInvalidInput)
	}
	return from, to, nil
}

// ── Predicados ────────────────────────────────────────────────────────────────

func logUserContains(q string) filter.Predicate[entity.AuditLog] {
	if filter.Fold(q) == "" {
		return nil
	}
	return func(l entity.AuditLog) bool { return filter.ContainsFold(l.UserEmail, q) }
}

func logFieldEquals(want string, field func(entity.AuditLog) string) filter.Predicate[entity.AuditLog] {
	want = filter.Fold(want)
	if want == "" {
		return nil
	}
	return func(l entity.AuditLog) bool { return filter.Fold(field(l)) == want }
}

func logCreatedWithin(from, to *time.Time) filter.Predicate[entity.AuditLog] {
	if from == nil && to == nil {
		return nil
	}
	return func(l entity.AuditLog) bool {
		if from != nil && l.CreatedAt.Before(*from) {
			return false
		}
		if to != nil && l.CreatedAt.After(*to) {
			return false
		}
		return true
	}
}

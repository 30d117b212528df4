package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/domain"
	"github.com/jhoicas/print3d-api/internal/domain/repository"
)

// VatRegimeUseCase listado de regímenes de IVA para mostrar junto a las ventas.
type VatRegimeUseCase struct {
	repo repository.VatRegimeRepository
}

// NewVatRegimeUseCase construye el caso de uso.
func NewVatRegimeUseCase(repo repository.VatRegimeRepository) *VatRegimeUseCase {
	return &VatRegimeUseCase{repo: repo}
}

// List devuelve todos los regímenes.
func (uc *VatRegimeUseCase) List(ctx context.Context) ([]dto.VatRegimeDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("regímenes de IVA: %w: %w", domain.ErrDataSource, err)
	}
	out := make([]dto.VatRegimeDTO, 0, len(list))
	for _, v := range list {
		out = append(out, dto.VatRegimeDTO{
			ID:          v.ID,
			Name:        v.Name,
			Rate:        v.Rate,
			CountryCode: v.CountryCode,
			Countries:   v.Countries,
		})
	}
	return out, nil
}

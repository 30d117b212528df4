package analytics_test

import (
	"context"
	"errors"

	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

var errDB = errors.New("conexión rechazada")

type fakeProducts struct {
	rows []entity.InventoryUnit
	err  error
}

func (f fakeProducts) ListForAnalytics(context.Context) ([]entity.InventoryUnit, error) {
	return f.rows, f.err
}

type fakeMaterials struct {
	rows []entity.Material
	err  error
}

func (f fakeMaterials) List(context.Context) ([]entity.Material, error) { return f.rows, f.err }

type fakeSales struct {
	rows []entity.SaleRecord
	err  error
}

func (f fakeSales) List(context.Context) ([]entity.SaleRecord, error) { return f.rows, f.err }

type fakeRenderer struct {
	got *dto.SalesReportDTO
}

func (r *fakeRenderer) Render(report *dto.SalesReportDTO) ([]byte, error) {
	r.got = report
	return []byte("archivo"), nil
}
func (r *fakeRenderer) ContentType() string { return "application/x-test" }
func (r *fakeRenderer) Extension() string   { return "bin" }

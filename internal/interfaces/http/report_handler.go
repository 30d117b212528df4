package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/print3d-api/internal/application/analytics"
	"github.com/jhoicas/print3d-api/internal/application/dto"
)

// ReportHandler maneja el reporte de ventas y sus exportaciones.
type ReportHandler struct {
	uc    *appanalytics.SalesReportUseCase
	clock Clock
	loc   *time.Location
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.SalesReportUseCase, clock Clock, loc *time.Location) *ReportHandler {
	return &ReportHandler{uc: uc, clock: clock, loc: loc}
}

// GetSales godoc
// @Summary      Reporte de ventas del período con reparto de beneficio
// @Description  Totales, serie diaria por canal, resumen por canal y filas de venta.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "last_7_days | last_30_days | current_month | last_month | custom (default last_30_days)"
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD), solo custom"
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD), solo custom"
// @Param        channel     query  string  false  "Canal; 'Unknown' = ventas sin canal"
// @Param        q           query  string  false  "Texto libre sobre producto, canal y notas"
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) GetSales(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}
	report, err := h.uc.GetReport(c.UserContext(), req, h.clock().In(h.loc))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ExportPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, h.uc.ExportPDF)
}

// ExportXLSX godoc
// @Summary      Reporte de ventas en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router       /api/reports/sales/xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, h.uc.ExportXLSX)
}

type exportFunc func(ctx context.Context, req dto.SalesReportRequest, now time.Time) (*dto.ExportFile, error)

func (h *ReportHandler) export(c *fiber.Ctx, fn exportFunc) error {
	var req dto.SalesReportRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}
	file, err := fn(c.UserContext(), req, h.clock().In(h.loc))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Content)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/print3d-api/internal/application/analytics"
	"github.com/jhoicas/print3d-api/internal/application/dto"
	"github.com/jhoicas/print3d-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC  *appanalytics.DashboardUseCase
	ReportUC     *appanalytics.SalesReportUseCase
	LogUC        *usecase.LogUseCase
	VatRegimeUC  *usecase.VatRegimeUseCase
	Tokens       TokenParser
	AllowedRoles []string
	Location     *time.Location // zona del negocio
	Clock        Clock          // nil = time.Now
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}

	// Health (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	// Rutas protegidas (requieren Bearer Token del servicio de autenticación)
	api := app.Group("/api", AuthMiddleware(deps.Tokens), RequireRole(deps.AllowedRoles...))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, clock, loc)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Reporte de ventas
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, clock, loc)
	reports.Get("/sales", reportHandler.GetSales)
	reports.Get("/sales/pdf", reportHandler.ExportPDF)
	reports.Get("/sales/xlsx", reportHandler.ExportXLSX)

	// Visor de registros
	logHandler := NewLogHandler(deps.LogUC, loc)
	api.Get("/logs", logHandler.List)

	// Catálogo
	vatHandler := NewVatRegimeHandler(deps.VatRegimeUC)
	api.Get("/vat-regimes", vatHandler.List)
}

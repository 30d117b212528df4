package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/print3d-api/internal/application/analytics"
	"github.com/jhoicas/print3d-api/internal/application/usecase"
	"github.com/jhoicas/print3d-api/internal/infrastructure/format"
	infrapdf "github.com/jhoicas/print3d-api/internal/infrastructure/pdf"
	"github.com/jhoicas/print3d-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/print3d-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/print3d-api/internal/interfaces/http"
	"github.com/jhoicas/print3d-api/pkg/config"
	"github.com/jhoicas/print3d-api/pkg/jwt"
	"github.com/jhoicas/print3d-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Analytics.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("target", postgres.Target(cfg.DB)).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// ── Repositorios (solo lectura) ───────────────────────────────────────────
	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	vatRepo := postgres.NewVatRegimeRepository(pool)

	// ── Exportaciones ─────────────────────────────────────────────────────────
	numbers := format.NewNumbers(cfg.Export.Locale, cfg.Export.Currency)
	pdfRenderer := infrapdf.NewSalesReportPDF(numbers, cfg.Export.BusinessName)
	xlsxRenderer := infraxlsx.NewSalesReportXLSX()

	// ── Casos de uso ──────────────────────────────────────────────────────────
	dashboardUC := analytics.NewDashboardUseCase(productRepo, materialRepo, saleRepo)
	reportUC := analytics.NewSalesReportUseCase(saleRepo, analytics.ReportConfig{
		Split:    cfg.Analytics.Split,
		Channels: cfg.Analytics.Channels,
	}, pdfRenderer, xlsxRenderer)
	logUC := usecase.NewLogUseCase(logRepo)
	vatUC := usecase.NewVatRegimeUseCase(vatRepo)

	verifier, err := jwt.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience, cfg.Auth.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("verificador JWT")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Print3D Analytics API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		LogUC:        logUC,
		VatRegimeUC:  vatUC,
		Tokens:       verifier,
		AllowedRoles: cfg.Auth.AllowedRoles,
		Location:     cfg.Analytics.Location,
		Clock:        time.Now,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/controle-vendas/internal/application/analytics"
	"github.com/jhoicas/controle-vendas/internal/application/catalog"
	"github.com/jhoicas/controle-vendas/internal/application/sales"
	"github.com/jhoicas/controle-vendas/internal/application/usecase"
	infrapdf "github.com/jhoicas/controle-vendas/internal/infrastructure/pdf"
	"github.com/jhoicas/controle-vendas/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/controle-vendas/internal/interfaces/http"
	"github.com/jhoicas/controle-vendas/pkg/config"
	"github.com/jhoicas/controle-vendas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, closeBackend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer closeBackend()

	st := catalog.New(ctx, backend, log)
	threshold := cfg.Sales.LowStockThreshold

	productUC := usecase.NewProductUseCase(st, threshold, log)
	salesUC := sales.NewSalesUseCase(st, st, log)
	dashboardUC := appanalytics.NewDashboardUseCase(st, st, threshold)
	inventoryUC := appanalytics.NewInventoryUseCase(st, threshold)
	reportUC := appanalytics.NewReportUseCase(st)

	// PDF: reporte de ventas del período
	reportPDFUC := appanalytics.NewReportPDFUseCase(reportUC, infrapdf.NewMarotoReportGenerator(), cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de Vendas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		SalesUC:     salesUC,
		DashboardUC: dashboardUC,
		InventoryUC: inventoryUC,
		ReportUC:    reportUC,
		ReportPDFUC: reportPDFUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

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

	"github.com/jhoicas/Inventario-tracker/internal/application/inventory"
	infrapdf "github.com/jhoicas/Inventario-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-tracker/internal/infrastructure/xmlreport"
	"github.com/jhoicas/Inventario-tracker/internal/interfaces/console"
	httpRouter "github.com/jhoicas/Inventario-tracker/internal/interfaces/http"
	"github.com/jhoicas/Inventario-tracker/pkg/config"
	"github.com/jhoicas/Inventario-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// En modo consola los logs van a stderr para no mezclarse con el menú.
	logOut := os.Stdout
	if cfg.App.Mode == config.ModeConsole {
		logOut = os.Stderr
	}
	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.Log.Level,
		Output: logOut,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("mode", cfg.App.Mode).
		Msg("iniciando aplicación")

	manager := inventory.NewManager(log.Component("inventory"))
	if cfg.Inventory.Seed {
		if err := inventory.Seed(manager); err != nil {
			log.Fatal().Err(err).Msg("carga de productos de ejemplo")
		}
	}

	// Reportes: PDF (maroto) y XML (etree)
	reportUC := inventory.NewReportUseCase(
		manager, cfg.Inventory.ReportTitle, cfg.Inventory.LowStockThreshold,
		infrapdf.NewMarotoReportGenerator(),
		xmlreport.NewEtreeReportWriter(),
	)

	if cfg.App.Mode == config.ModeConsole {
		runConsole(cfg, manager, reportUC, log)
		return
	}
	runHTTP(cfg, manager, reportUC, log)
}

func runConsole(cfg *config.Config, manager *inventory.Manager, reports *inventory.ReportUseCase, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ui := console.New(manager, reports, os.Stdin, os.Stdout, console.Options{
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		ReportDir:         cfg.Inventory.ReportDir,
	}, log.Component("console"))
	if err := ui.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("sesión de consola")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}

func runHTTP(cfg *config.Config, manager *inventory.Manager, reports *inventory.ReportUseCase, log *logger.Logger) {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Manager:           manager,
		Reports:           reports,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		Log:               log,
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
	infralabel "github.com/ithesk/odoo-scanner/internal/infrastructure/label"
	"github.com/ithesk/odoo-scanner/internal/infrastructure/odoo"
	infrapdf "github.com/ithesk/odoo-scanner/internal/infrastructure/pdf"
	"github.com/ithesk/odoo-scanner/internal/infrastructure/printing"
	httpRouter "github.com/ithesk/odoo-scanner/internal/interfaces/http"
	"github.com/ithesk/odoo-scanner/pkg/config"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.App.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.App.UploadDir).Msg("crear directorio de cargas")
	}

	// Gateway Odoo: la configuración se toma como snapshot en cada llamada
	// para que una reconfiguración del operador aplique al instante.
	client := odoo.NewClient(cfg.OdooSnapshot)
	gateway := odoo.NewGateway(client, log, cfg.Limits.MoveBatchSize, cfg.Limits.LookupBatchSize)

	catalogUC := usecase.NewCatalogUseCase(gateway)
	transferUC := usecase.NewTransferUseCase(gateway, log, cfg.Limits.MaxQtyPerLine, cfg.Limits.MaxDistinct)
	ingestUC := usecase.NewIngestUseCase(transferUC, log, cfg.Limits.ChunkSize)

	// Las sesiones de verificación expiran solas si el operador abandona
	// la recepción a medias.
	verifications := usecase.NewVerificationStore(4 * time.Hour)
	receptionUC := usecase.NewReceptionUseCase(gateway, verifications, log)

	reportUC := usecase.NewReportUseCase(gateway, infrapdf.NewMarotoReportRenderer(), log, cfg.App.UploadDir)

	printer := printing.NewCUPSPrinter(cfg.Print.SpoolerHost, cfg.Print.SpoolerPort)
	labelUC := usecase.NewLabelUseCase(
		gateway, infralabel.NewRenderer(), printer, log,
		cfg.App.UploadDir, cfg.Print.DefaultPrinter, cfg.Print.CleanupDelay,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 90, // los create en lote contra Odoo pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:   catalogUC,
		Ingest:    ingestUC,
		Reception: receptionUC,
		Report:    reportUC,
		Label:     labelUC,
		Config:    cfg,
		Gateway:   gateway,
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

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
	"github.com/ithesk/odoo-scanner/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog   *usecase.CatalogUseCase
	Ingest    *usecase.IngestUseCase
	Reception *usecase.ReceptionUseCase
	Report    *usecase.ReportUseCase
	Label     *usecase.LabelUseCase
	Config    *config.Config
	Gateway   ConnectionTester
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	scanHandler := NewScanHandler(deps.Catalog, deps.Ingest, deps.Config.App.UploadDir)
	api.Get("/locations", scanHandler.Locations)
	api.Post("/scan", scanHandler.Scan)
	api.Post("/upload", scanHandler.Upload)
	api.Post("/barcode", scanHandler.AddBarcode)
	api.Get("/products/:barcode", scanHandler.ProductLookup)

	configHandler := NewConfigHandler(deps.Config, deps.Gateway)
	api.Get("/config", configHandler.Get)
	api.Put("/config", configHandler.Update)

	receptionHandler := NewReceptionHandler(deps.Reception)
	receptions := api.Group("/receptions")
	receptions.Get("/", receptionHandler.List)
	receptions.Get("/:id", receptionHandler.Detail)
	receptions.Post("/:id/verify", receptionHandler.Verify)
	receptions.Post("/:id/validate", receptionHandler.Validate)

	labelHandler := NewLabelHandler(deps.Label)
	api.Post("/labels", labelHandler.Generate)
	api.Post("/labels/print", labelHandler.Print)
	api.Get("/printers", labelHandler.Printers)

	reportHandler := NewReportHandler(deps.Report)
	api.Post("/report", reportHandler.Generate)
}

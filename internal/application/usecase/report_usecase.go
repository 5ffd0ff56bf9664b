package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/domain/repository"
	"github.com/ithesk/odoo-scanner/internal/domain/scan"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

// ReportRow fila del reporte de inventario.
type ReportRow struct {
	Barcode  string
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// ReportData datos ya agregados para renderizar el reporte.
type ReportData struct {
	GeneratedAt   time.Time
	DistinctCodes int
	TotalUnits    int
	Found         []ReportRow
	NotFound      []ReportRow
	TotalValue    decimal.Decimal // Σ precio × cantidad de los encontrados
}

// ReportRenderer puerto de renderizado del reporte; la implementación
// concreta (Maroto) vive en infrastructure/pdf.
type ReportRenderer interface {
	RenderInventoryReport(data *ReportData) ([]byte, error)
}

// ReportUseCase genera el reporte PDF de inventario a partir de un CSV de
// códigos de barras: tabla de frecuencias, lookup por lotes en Odoo y
// secciones de encontrados / no encontrados con valor total.
type ReportUseCase struct {
	gateway   repository.ErpGateway
	renderer  ReportRenderer
	log       *logger.Logger
	outputDir string
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(gateway repository.ErpGateway, renderer ReportRenderer, log *logger.Logger, outputDir string) *ReportUseCase {
	return &ReportUseCase{
		gateway:   gateway,
		renderer:  renderer,
		log:       log,
		outputDir: outputDir,
		now:       time.Now,
	}
}

// Generate analiza el CSV, consulta Odoo por lotes y escribe el PDF en el
// directorio de salida. Devuelve el resumen con la ruta del archivo.
func (uc *ReportUseCase) Generate(ctx context.Context, file io.Reader) (*dto.ReportSummaryResponse, error) {
	codes, err := ParseBarcodeFile(file)
	if err != nil {
		return nil, err
	}
	counter := scan.NewMultiset(codes)

	products, err := uc.gateway.SearchReadProductsByBarcodes(ctx, counter.Codes())
	if err != nil {
		return nil, err
	}

	data := &ReportData{
		GeneratedAt:   uc.now(),
		DistinctCodes: counter.Distinct(),
		TotalUnits:    counter.Total(),
		TotalValue:    decimal.Zero,
	}
	for _, code := range counter.Codes() {
		qty := counter.Count(code)
		product, found := products[code]
		if !found {
			data.NotFound = append(data.NotFound, ReportRow{Barcode: code, Quantity: qty})
			continue
		}
		row := ReportRow{Barcode: code, Name: product.Name, Quantity: qty, Price: product.Price}
		data.Found = append(data.Found, row)
		data.TotalValue = data.TotalValue.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	pdf, err := uc.renderer.RenderInventoryReport(data)
	if err != nil {
		return nil, fmt.Errorf("renderizar reporte: %w", err)
	}

	filename := fmt.Sprintf("inventory_report_%s.pdf", uc.now().Format("20060102_150405"))
	path := filepath.Join(uc.outputDir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return nil, fmt.Errorf("escribir reporte: %w", err)
	}

	uc.log.Info().Str("archivo", path).Int("distintos", data.DistinctCodes).
		Int("encontrados", len(data.Found)).Msg("reporte de inventario generado")

	return &dto.ReportSummaryResponse{
		Success:       true,
		File:          path,
		DistinctCodes: data.DistinctCodes,
		TotalUnits:    data.TotalUnits,
		FoundProducts: len(data.Found),
		TotalValue:    "$" + data.TotalValue.StringFixed(2),
	}, nil
}

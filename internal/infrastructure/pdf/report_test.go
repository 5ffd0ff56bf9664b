package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

func TestRenderInventoryReport(t *testing.T) {
	r := NewMarotoReportRenderer()
	data := &usecase.ReportData{
		GeneratedAt:   time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		DistinctCodes: 3,
		TotalUnits:    6,
		Found: []usecase.ReportRow{
			{Barcode: "7501000111112", Name: "Café 500g", Quantity: 3, Price: decimal.NewFromFloat(9.5)},
			{Barcode: "7501000222229", Name: "Azúcar 1kg", Quantity: 1, Price: decimal.NewFromFloat(2.25)},
		},
		NotFound: []usecase.ReportRow{
			{Barcode: "desconocido", Quantity: 2},
		},
		TotalValue: decimal.NewFromFloat(30.75),
	}

	raw, err := r.RenderInventoryReport(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "la salida debe ser un documento PDF")
}

func TestRenderInventoryReport_SinFilas(t *testing.T) {
	r := NewMarotoReportRenderer()
	raw, err := r.RenderInventoryReport(&usecase.ReportData{
		GeneratedAt: time.Now(),
		TotalValue:  decimal.Zero,
	})
	require.NoError(t, err, "un CSV sin coincidencias sigue produciendo reporte")
	assert.NotEmpty(t, raw)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 35))
	largo := "Nombre de producto larguísimo que no cabe en la tabla"
	assert.Equal(t, largo[:35]+"...", truncate(largo, 35))
}

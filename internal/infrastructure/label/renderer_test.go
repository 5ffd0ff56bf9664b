package label

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Sample Text", displayName("Sample Text"), "los nombres cortos no se tocan")
	assert.Equal(t, "Exactamente veinte..", displayName("Exactamente veinte.."))
	assert.Equal(t, "Nombre de product...", displayName("Nombre de producto demasiado largo"))
}

func TestDisplayPrice(t *testing.T) {
	assert.Equal(t, "$19.99", displayPrice(decimal.NewFromFloat(19.99)))
	assert.Equal(t, "$5.00", displayPrice(decimal.NewFromInt(5)))
	assert.Equal(t, "$0.00", displayPrice(decimal.Zero))
}

func TestUseEAN(t *testing.T) {
	assert.True(t, useEAN("4657465784172"), "13 dígitos con control correcto es EAN-13")
	assert.True(t, useEAN("7501000111114"))
	assert.False(t, useEAN("7501000111112"), "dígito de control incorrecto")
	assert.False(t, useEAN("4657465784171"))
	assert.False(t, useEAN("465746578417"), "12 dígitos no alcanzan")
	assert.False(t, useEAN("46574657841722"), "14 dígitos sobran")
	assert.False(t, useEAN("ABC4657465784"), "las letras descartan EAN")
	assert.False(t, useEAN(""))
}

func TestRenderPNG(t *testing.T) {
	r := NewRenderer()
	data := usecase.LabelData{
		Barcode: "4657465784172",
		Name:    "Café 500g",
		Price:   decimal.NewFromFloat(9.5),
	}

	raw, err := r.RenderPNG(data)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err, "la salida debe ser un PNG decodificable")
	bounds := img.Bounds()
	assert.Equal(t, mmToPx(WidthMM), bounds.Dx(), "38 mm a 300 DPI")
	assert.Equal(t, mmToPx(HeightMM), bounds.Dy(), "30 mm a 300 DPI")
}

func TestRenderPNG_CodigoNoEAN(t *testing.T) {
	r := NewRenderer()
	raw, err := r.RenderPNG(usecase.LabelData{Barcode: "REF-INTERNA-01", Name: "Repuesto", Price: decimal.Zero})
	require.NoError(t, err, "los códigos alfanuméricos caen a Code128")
	assert.NotEmpty(t, raw)
}

func TestRenderPNG_SinCodigo(t *testing.T) {
	r := NewRenderer()
	_, err := r.RenderPNG(usecase.LabelData{Name: "Sin código"})
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	r := NewRenderer()
	data := usecase.LabelData{
		Barcode: "7501000111112",
		Name:    "Azúcar 1kg",
		Price:   decimal.NewFromFloat(2.25),
	}

	raw, err := r.RenderPDF(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "la salida debe ser un documento PDF")
}

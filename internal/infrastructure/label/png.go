package label

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// dpi resolución del raster; 300 DPI es lo que esperan las impresoras de
// etiquetas térmicas.
const dpi = 300.0

// mmToPx convierte milímetros a píxeles a la resolución del raster.
func mmToPx(mm float64) int {
	return int(mm / 25.4 * dpi)
}

// RenderPNG rasteriza la etiqueta a 300 DPI sobre fondo blanco.
func (r *Renderer) RenderPNG(data usecase.LabelData) ([]byte, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	width := mmToPx(WidthMM)
	height := mmToPx(HeightMM)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	margin := mmToPx(1)
	drawText(img, displayName(data.Name), margin, margin+16)

	symbol, err := encodeSymbol(data.Barcode)
	if err != nil {
		return nil, err
	}
	barTop := margin + 28
	barHeight := mmToPx(14)
	scaled, err := barcode.Scale(symbol, width-2*margin, barHeight)
	if err != nil {
		return nil, fmt.Errorf("label: escalar código de barras: %w", err)
	}
	draw.Draw(img, image.Rect(margin, barTop, width-margin, barTop+barHeight),
		scaled, scaled.Bounds().Min, draw.Src)

	drawText(img, data.Barcode, margin, barTop+barHeight+18)
	drawText(img, displayPrice(data.Price), margin, height-margin-6)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("label: codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeSymbol EAN-13 para códigos EAN válidos, Code128 para el resto.
func encodeSymbol(value string) (barcode.Barcode, error) {
	if useEAN(value) {
		symbol, err := ean.Encode(value)
		if err == nil {
			return symbol, nil
		}
		// dígito de control inesperadamente inválido: caer a Code128
	}
	symbol, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("label: codificar %q: %w", value, err)
	}
	return symbol, nil
}

// drawText dibuja una línea de texto con la fuente embebida. La posición y
// es la línea base.
func drawText(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

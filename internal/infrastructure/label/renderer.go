// Package label renderiza etiquetas de producto de 38×30 mm: nombre
// truncado, símbolo de código de barras (EAN-13 si el código es EAN-13
// válido, Code128 en el resto de casos), código en claro y precio.
package label

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// Dimensiones físicas de la etiqueta en milímetros.
const (
	WidthMM  = 38.0
	HeightMM = 30.0
)

// Truncado del nombre: más de 20 caracteres se recorta a 17 + "...".
const (
	nameMaxLen      = 20
	nameTruncateLen = 17
)

// Renderer implementa usecase.LabelRenderer combinando Maroto (PDF) y
// boombuler/barcode (PNG a 300 DPI).
type Renderer struct{}

// NewRenderer construye el renderizador.
func NewRenderer() *Renderer { return &Renderer{} }

var _ usecase.LabelRenderer = (*Renderer)(nil)

func displayName(name string) string {
	if len(name) > nameMaxLen {
		return name[:nameTruncateLen] + "..."
	}
	return name
}

func displayPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

// useEAN decide el simbolismo: EAN-13 exige 13 dígitos numéricos con dígito
// de control correcto; cualquier otro código va en Code128.
func useEAN(code string) bool {
	if len(code) != 13 {
		return false
	}
	sum := 0
	for i, r := range code {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i == 12 {
			return (10-sum%10)%10 == digit
		}
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}
	return false
}

func validate(data usecase.LabelData) error {
	if data.Barcode == "" {
		return fmt.Errorf("label: código de barras vacío")
	}
	return nil
}

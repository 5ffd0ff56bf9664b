// Package pdf implementa la generación de documentos con Maroto v2: el
// reporte tabular de inventario y la etiqueta de producto en vectorial.
//
// Layout del reporte (página carta):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Reporte de Inventario                                      │
//	│  Fecha / códigos distintos / unidades totales               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Cantidad | Precio                │
//	│  PRODUCTOS NO ENCONTRADOS EN ODOO                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Encontrados X de Y  /  Valor total del inventario           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 173, Green: 216, Blue: 230}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// reportNameMaxLen tope de caracteres del nombre en la tabla del reporte.
const reportNameMaxLen = 35

// MarotoReportRenderer implementa usecase.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderizador.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

var _ usecase.ReportRenderer = (*MarotoReportRenderer)(nil)

// RenderInventoryReport genera el PDF del reporte y devuelve sus bytes.
func (r *MarotoReportRenderer) RenderInventoryReport(data *usecase.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Reporte de Inventario", props.Text{Style: fontstyle.Bold, Size: 16}),
	)))
	m.AddRows(row.New(5).Add(col.New(12).Add(
		text.New("Fecha: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{Size: 9, Color: colorGray}),
	)))
	m.AddRows(row.New(5).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de productos diferentes: %d", data.DistinctCodes), props.Text{Size: 9}),
	)))
	m.AddRows(row.New(5).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de unidades: %d", data.TotalUnits), props.Text{Size: 9}),
	)))
	m.AddRows(line.NewRow(3, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range data.Found {
		m.AddRows(tableRow(item.Barcode, truncate(item.Name, reportNameMaxLen),
			fmt.Sprintf("%d", item.Quantity), "$"+item.Price.StringFixed(2)))
	}

	if len(data.NotFound) > 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("PRODUCTOS NO ENCONTRADOS EN ODOO", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		)))
		for _, item := range data.NotFound {
			m.AddRows(tableRow(item.Barcode, "NO ENCONTRADO",
				fmt.Sprintf("%d", item.Quantity), "$0.00"))
		}
	}

	m.AddRows(line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(5).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de productos encontrados: %d de %d", len(data.Found), data.DistinctCodes),
			props.Text{Size: 9}),
	)))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Valor total del inventario: $"+data.TotalValue.StringFixed(2),
			props.Text{Style: fontstyle.Bold, Size: 12}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Tabla ─────────────────────────────────────────────────────────────────────

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorHeader}).Add(
		col.New(3).Add(text.New("Código de Barras", style)),
		col.New(6).Add(text.New("Nombre del Producto", style)),
		col.New(1).Add(text.New("Cantidad", style)),
		col.New(2).Add(text.New("Precio", style)),
	)
}

func tableRow(barcode, name, qty, price string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(barcode, props.Text{Size: 8})),
		col.New(6).Add(text.New(name, props.Text{Size: 8})),
		col.New(1).Add(text.New(qty, props.Text{Size: 8, Align: align.Center})),
		col.New(2).Add(text.New(price, props.Text{Size: 8, Align: align.Right})),
	)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

package label

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
)

// RenderPDF genera la etiqueta vectorial con página a la medida física.
func (r *Renderer) RenderPDF(data usecase.LabelData) ([]byte, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithDimensions(WidthMM, HeightMM).
		WithLeftMargin(2).WithRightMargin(2).
		WithTopMargin(2).WithBottomMargin(1).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		Build()

	symbology := barcode.Code128
	if useEAN(data.Barcode) {
		symbology = barcode.EAN
	}

	m := maroto.New(cfg)
	m.AddRows(
		row.New(4).Add(col.New(12).Add(
			text.New(displayName(data.Name), props.Text{Style: fontstyle.Bold, Size: 7}),
		)),
		row.New(13).Add(col.New(12).Add(
			code.NewBar(data.Barcode, props.Barcode{Type: symbology, Center: true, Percent: 95}),
		)),
		row.New(3).Add(col.New(12).Add(
			text.New(data.Barcode, props.Text{Size: 6, Align: align.Center}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(displayPrice(data.Price), props.Text{Style: fontstyle.Bold, Size: 10}),
		)),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("label: generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

package usecase_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

// fakeReportRenderer captura los datos agregados y devuelve un PDF de mentira.
type fakeReportRenderer struct {
	data *usecase.ReportData
}

func (f *fakeReportRenderer) RenderInventoryReport(data *usecase.ReportData) ([]byte, error) {
	f.data = data
	return []byte("%PDF-falso"), nil
}

func TestReportUseCase_Generate(t *testing.T) {
	gw := newFakeGateway()
	gw.addProduct("7501000111112", "Café 500g", 9.5)
	gw.addProduct("7501000222229", "Azúcar 1kg", 2.25)

	renderer := &fakeReportRenderer{}
	uc := usecase.NewReportUseCase(gw, renderer, logger.Nop(), t.TempDir())

	file := "barcode\n" +
		"7501000111112\n7501000111112\n7501000111112\n" +
		"7501000222229\n" +
		"desconocido\ndesconocido\n"
	summary, err := uc.Generate(context.Background(), strings.NewReader(file))
	require.NoError(t, err)

	assert.True(t, summary.Success)
	assert.Equal(t, 3, summary.DistinctCodes)
	assert.Equal(t, 6, summary.TotalUnits)
	assert.Equal(t, 2, summary.FoundProducts)
	// 3 × 9.50 + 1 × 2.25
	assert.Equal(t, "$30.75", summary.TotalValue)

	raw, err := os.ReadFile(summary.File)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-falso", string(raw))

	require.NotNil(t, renderer.data)
	require.Len(t, renderer.data.Found, 2)
	assert.Equal(t, "7501000111112", renderer.data.Found[0].Barcode, "las filas salen en orden de aparición")
	assert.Equal(t, 3, renderer.data.Found[0].Quantity)
	require.Len(t, renderer.data.NotFound, 1)
	assert.Equal(t, "desconocido", renderer.data.NotFound[0].Barcode)
	assert.Equal(t, 2, renderer.data.NotFound[0].Quantity)
}

func TestReportUseCase_Generate_ArchivoVacio(t *testing.T) {
	uc := usecase.NewReportUseCase(newFakeGateway(), &fakeReportRenderer{}, logger.Nop(), t.TempDir())

	_, err := uc.Generate(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}

package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ithesk/odoo-scanner/internal/application/usecase"
	"github.com/ithesk/odoo-scanner/internal/domain/scan"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

func TestTransferUseCase_Create_TodosResueltos(t *testing.T) {
	gw := newFakeGateway()
	gw.addProduct("7501000111112", "Café 500g", 9.5)
	gw.addProduct("7501000222229", "Azúcar 1kg", 2.25)

	codes := scan.NewMultiset(nil)
	codes.Add("7501000111112", 3)
	codes.Add("7501000222229", 1)
	codes.Add("7501000111112", 2) // repetido: acumula cantidad

	uc := usecase.NewTransferUseCase(gw, logger.Nop(), 100, 20)
	result := uc.Create(context.Background(), 8, 9, codes)

	require.True(t, result.Success, result.Message)
	assert.Equal(t, 2, result.ProductsCount, "una línea por código distinto")
	assert.Empty(t, result.NotFound)
	assert.Empty(t, result.Warnings)

	moves := gw.lastMoves()
	require.Len(t, moves, 2)
	assert.Equal(t, 5.0, moves[0].Quantity, "las repeticiones suman cantidad")
	assert.Equal(t, 1.0, moves[1].Quantity)

	transfer, err := gw.ReadTransfer(context.Background(), result.TransferID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OriginLabel, transfer.Origin)
	assert.True(t, transfer.Pending(), "tras confirmar queda pendiente de recepción")
}

func TestTransferUseCase_Create_CantidadTruncada(t *testing.T) {
	gw := newFakeGateway()
	gw.addProduct("111", "Producto", 1)

	codes := scan.NewMultiset(nil)
	codes.Add("111", 250)

	uc := usecase.NewTransferUseCase(gw, logger.Nop(), 100, 20)
	result := uc.Create(context.Background(), 8, 9, codes)

	require.True(t, result.Success)
	require.Len(t, result.Warnings, 1, "el truncado debe avisarse")

	moves := gw.lastMoves()
	require.Len(t, moves, 1)
	assert.Equal(t, 100.0, moves[0].Quantity, "la cantidad se limita al tope")
}

func TestTransferUseCase_Create_TruncaDistintosEnOrdenDeAparicion(t *testing.T) {
	gw := newFakeGateway()
	codes := scan.NewMultiset(nil)
	for i := 0; i < 25; i++ {
		barcode := fmt.Sprintf("cod-%02d", i)
		gw.addProduct(barcode, "Producto "+barcode, 1)
		codes.Add(barcode, 1)
	}

	uc := usecase.NewTransferUseCase(gw, logger.Nop(), 100, 20)
	result := uc.Create(context.Background(), 8, 9, codes)

	require.True(t, result.Success)
	assert.Equal(t, 20, result.ProductsCount)
	require.Len(t, result.Warnings, 1)
	assert.Empty(t, result.NotFound, "los excedentes se descartan, no cuentan como no encontrados")

	moves := gw.lastMoves()
	require.Len(t, moves, 20)
	for i, move := range moves {
		assert.Equal(t, fmt.Sprintf("cod-%02d", i), move.Barcode, "se conservan los primeros 20 en orden")
	}
}

func TestTransferUseCase_Create_ParcialmenteResueltos(t *testing.T) {
	gw := newFakeGateway()
	gw.addProduct("existe", "Producto real", 4)

	codes := scan.NewMultiset(nil)
	codes.Add("existe", 2)
	codes.Add("no-existe", 1)

	uc := usecase.NewTransferUseCase(gw, logger.Nop(), 100, 20)
	result := uc.Create(context.Background(), 8, 9, codes)

	require.True(t, result.Success, "los no encontrados no impiden la transferencia")
	assert.Equal(t, 1, result.ProductsCount)
	assert.Equal(t, []string{"no-existe"}, result.NotFound)
}

func TestTransferUseCase_Create_NingunoResuelto(t *testing.T) {
	gw := newFakeGateway()
	codes := scan.NewMultiset(nil)
	codes.Add("fantasma-1", 1)
	codes.Add("fantasma-2", 1)

	uc := usecase.NewTransferUseCase(gw, logger.Nop(), 100, 20)
	result := uc.Create(context.Background(), 8, 9, codes)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"fantasma-1", "fantasma-2"}, result.NotFound)
	require.Len(t, gw.deleted, 1, "el picking vacío debe eliminarse de Odoo")
	assert.Empty(t, gw.transfers, "no queda ninguna transferencia huérfana")
}

func TestTransferUseCase_Create_SinUbicaciones(t *testing.T) {
	gw := newFakeGateway()
	codes := scan.NewMultiset(nil)
	codes.Add("111", 1)

	uc := usecase.NewTransferUseCase(gw, logger.Nop(), 100, 20)

	result := uc.Create(context.Background(), 0, 9, codes)
	assert.False(t, result.Success)

	result = uc.Create(context.Background(), 8, 0, codes)
	assert.False(t, result.Success)
	assert.Empty(t, gw.transfers, "sin ubicaciones no se toca Odoo")
}

func TestTransferUseCase_Create_SinCodigos(t *testing.T) {
	gw := newFakeGateway()
	uc := usecase.NewTransferUseCase(gw, logger.Nop(), 100, 20)

	result := uc.Create(context.Background(), 8, 9, scan.NewMultiset(nil))
	assert.False(t, result.Success)

	result = uc.Create(context.Background(), 8, 9, nil)
	assert.False(t, result.Success)
}

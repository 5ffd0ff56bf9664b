package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/application/usecase"
	"github.com/ithesk/odoo-scanner/internal/domain"
	"github.com/ithesk/odoo-scanner/internal/domain/entity"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

func pendingTransfer() entity.Transfer {
	return entity.Transfer{
		ID:    200,
		Name:  "WH/INT/00200",
		State: entity.TransferStateAssigned,
		Moves: []entity.Movement{
			{ProductID: 1, ProductName: "Café 500g", Barcode: "7501000111112", Quantity: 3},
			{ProductID: 2, ProductName: "Azúcar 1kg", Barcode: "7501000222229", Quantity: 1},
			// línea duplicada del mismo producto: cuenta como un solo esperado
			{ProductID: 1, ProductName: "Café 500g", Barcode: "7501000111112", Quantity: 2},
		},
	}
}

func newReception(gw *fakeGateway) *usecase.ReceptionUseCase {
	store := usecase.NewVerificationStore(time.Hour)
	return usecase.NewReceptionUseCase(gw, store, logger.Nop())
}

func TestReceptionUseCase_Verify(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(pendingTransfer())
	uc := newReception(gw)

	resp, err := uc.Verify(context.Background(), 200, "7501000111112")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.AlreadyVerified)
	assert.Equal(t, 1, resp.VerifiedCount)
	assert.Equal(t, 2, resp.ExpectedCount, "los códigos duplicados colapsan a un esperado")
	assert.InDelta(t, 50.0, resp.Progress, 0.01)
}

func TestReceptionUseCase_Verify_Repetido(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(pendingTransfer())
	uc := newReception(gw)

	_, err := uc.Verify(context.Background(), 200, "7501000111112")
	require.NoError(t, err)

	resp, err := uc.Verify(context.Background(), 200, "7501000111112")
	require.NoError(t, err)
	assert.True(t, resp.AlreadyVerified)
	assert.Equal(t, 1, resp.VerifiedCount, "repetir un escaneo no suma progreso")
}

func TestReceptionUseCase_Verify_NoEsperado(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(pendingTransfer())
	uc := newReception(gw)

	_, err := uc.Verify(context.Background(), 200, "codigo-ajeno")
	assert.ErrorIs(t, err, domain.ErrNotExpected)

	_, err = uc.Verify(context.Background(), 200, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceptionUseCase_Validate_Incompleta(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(pendingTransfer())
	uc := newReception(gw)

	_, err := uc.Verify(context.Background(), 200, "7501000111112")
	require.NoError(t, err)

	_, err = uc.Validate(context.Background(), 200)
	assert.ErrorIs(t, err, domain.ErrIncompleteVerification)
	assert.Empty(t, gw.validated, "con verificación parcial no se toca Odoo")
}

func TestReceptionUseCase_Validate_Completa(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(pendingTransfer())
	uc := newReception(gw)

	_, err := uc.Verify(context.Background(), 200, "7501000111112")
	require.NoError(t, err)
	_, err = uc.Verify(context.Background(), 200, "7501000222229")
	require.NoError(t, err)

	resp, err := uc.Validate(context.Background(), 200)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, []int64{200}, gw.validated)

	// La sesión se descarta al validar: el detalle vuelve sin verificados
	detail, err := uc.Detail(context.Background(), 200)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.VerifiedCount)
	assert.Equal(t, dto.ReceptionValidated, detail.SessionState, "el estado done manda sobre el progreso")
}

func TestReceptionUseCase_Validate_SinLineas(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(entity.Transfer{ID: 300, Name: "WH/INT/00300", State: entity.TransferStateAssigned})
	uc := newReception(gw)

	_, err := uc.Validate(context.Background(), 300)
	assert.ErrorIs(t, err, domain.ErrIncompleteVerification,
		"una transferencia sin líneas jamás alcanza el 100%")
}

func TestReceptionUseCase_Detail_Progreso(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(pendingTransfer())
	uc := newReception(gw)

	detail, err := uc.Detail(context.Background(), 200)
	require.NoError(t, err)
	assert.Equal(t, dto.ReceptionNotStarted, detail.SessionState)
	assert.Zero(t, detail.Progress)
	require.Len(t, detail.Lines, 3, "el detalle conserva las líneas tal cual vienen de Odoo")

	_, err = uc.Verify(context.Background(), 200, "7501000222229")
	require.NoError(t, err)

	detail, err = uc.Detail(context.Background(), 200)
	require.NoError(t, err)
	assert.Equal(t, dto.ReceptionInProgress, detail.SessionState)
	assert.Equal(t, 1, detail.VerifiedCount)
	for _, line := range detail.Lines {
		assert.Equal(t, line.Barcode == "7501000222229", line.Verified)
	}
}

func TestReceptionUseCase_List(t *testing.T) {
	gw := newFakeGateway()
	gw.addTransfer(pendingTransfer())
	gw.addTransfer(entity.Transfer{ID: 999, Name: "WH/INT/00999", State: entity.TransferStateDone})
	uc := newReception(gw)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1, "las transferencias hechas no aparecen como pendientes")
	assert.Equal(t, int64(200), list[0].TransferID)
}

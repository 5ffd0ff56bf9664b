package usecase

import (
	"context"
	"fmt"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/domain"
	"github.com/ithesk/odoo-scanner/internal/domain/entity"
	"github.com/ithesk/odoo-scanner/internal/domain/repository"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

// ReceptionUseCase flujo de recepción: el operador confirma físicamente cada
// producto esperado de una transferencia pendiente y solo puede validarla en
// Odoo cuando el 100% de los códigos esperados está verificado.
//
// El conjunto esperado se relee de Odoo en cada operación: el ERP es la
// autoridad y la transferencia puede cambiar entre peticiones.
type ReceptionUseCase struct {
	gateway repository.ErpGateway
	store   *VerificationStore
	log     *logger.Logger
}

// NewReceptionUseCase construye el caso de uso.
func NewReceptionUseCase(gateway repository.ErpGateway, store *VerificationStore, log *logger.Logger) *ReceptionUseCase {
	return &ReceptionUseCase{gateway: gateway, store: store, log: log}
}

// List transferencias pendientes de recepción.
func (uc *ReceptionUseCase) List(ctx context.Context) ([]dto.ReceptionSummaryResponse, error) {
	transfers, err := uc.gateway.ListPendingTransfers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceptionSummaryResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.ReceptionSummaryResponse{
			TransferID: t.ID,
			Name:       t.Name,
			Origin:     t.Origin,
			State:      t.State,
			SourceName: t.SourceName,
			DestName:   t.DestName,
		})
	}
	return out, nil
}

// Detail detalle de una recepción con el progreso de verificación.
func (uc *ReceptionUseCase) Detail(ctx context.Context, transferID int64) (*dto.ReceptionDetailResponse, error) {
	transfer, err := uc.gateway.ReadTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	return uc.buildDetail(transfer), nil
}

// Verify confirma un código escaneado contra las líneas esperadas.
func (uc *ReceptionUseCase) Verify(ctx context.Context, transferID int64, barcode string) (*dto.VerifyResponse, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	transfer, err := uc.gateway.ReadTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	expected := transfer.ExpectedBarcodes()
	if !expected[barcode] {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotExpected, barcode)
	}

	added := uc.store.Mark(transferID, barcode)
	verified, total, progress := uc.progress(transfer)

	resp := &dto.VerifyResponse{
		Success:       true,
		Progress:      progress,
		VerifiedCount: verified,
		ExpectedCount: total,
	}
	if !added {
		resp.AlreadyVerified = true
		resp.Message = fmt.Sprintf("el código %s ya estaba verificado", barcode)
		return resp, nil
	}
	resp.Message = fmt.Sprintf("código %s verificado", barcode)
	return resp, nil
}

// Validate valida la transferencia en Odoo. Exige verificación completa;
// al validar con éxito la sesión de verificación se descarta.
func (uc *ReceptionUseCase) Validate(ctx context.Context, transferID int64) (*dto.MessageResponse, error) {
	transfer, err := uc.gateway.ReadTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	verified, total, _ := uc.progress(transfer)
	if total == 0 || verified < total {
		return nil, fmt.Errorf("%w (%d de %d)", domain.ErrIncompleteVerification, verified, total)
	}

	if err := uc.gateway.ValidateTransfer(ctx, transferID); err != nil {
		return nil, err
	}
	uc.store.Clear(transferID)

	uc.log.Info().Int64("transfer_id", transferID).Msg("transferencia validada en Odoo")
	return &dto.MessageResponse{Success: true, Message: "transferencia validada"}, nil
}

// progress cuenta verificados contra esperados. Sin líneas esperadas el
// progreso es 0, nunca una división entre cero.
func (uc *ReceptionUseCase) progress(transfer *entity.Transfer) (verified, total int, percent float64) {
	expected := transfer.ExpectedBarcodes()
	set := uc.store.Verified(transfer.ID)
	for code := range expected {
		if set[code] {
			verified++
		}
	}
	total = len(expected)
	if total == 0 {
		return 0, 0, 0
	}
	return verified, total, float64(verified) / float64(total) * 100
}

func (uc *ReceptionUseCase) buildDetail(transfer *entity.Transfer) *dto.ReceptionDetailResponse {
	set := uc.store.Verified(transfer.ID)
	verified, total, percent := uc.progress(transfer)

	detail := &dto.ReceptionDetailResponse{
		TransferID:    transfer.ID,
		Name:          transfer.Name,
		State:         transfer.State,
		Progress:      percent,
		VerifiedCount: verified,
		ExpectedCount: total,
	}
	switch {
	case transfer.State == entity.TransferStateDone:
		detail.SessionState = dto.ReceptionValidated
	case total > 0 && verified == total:
		detail.SessionState = dto.ReceptionComplete
	case verified > 0:
		detail.SessionState = dto.ReceptionInProgress
	default:
		detail.SessionState = dto.ReceptionNotStarted
	}

	for _, move := range transfer.Moves {
		detail.Lines = append(detail.Lines, dto.ReceptionLineResponse{
			ProductID:   move.ProductID,
			ProductName: move.ProductName,
			Barcode:     move.Barcode,
			Quantity:    move.Quantity,
			Verified:    set[move.Barcode],
		})
	}
	return detail
}

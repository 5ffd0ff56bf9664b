package usecase

import (
	"context"
	"fmt"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/domain"
	"github.com/ithesk/odoo-scanner/internal/domain/repository"
	"github.com/ithesk/odoo-scanner/internal/domain/scan"
	"github.com/ithesk/odoo-scanner/pkg/logger"
)

// OriginLabel referencia que queda en el campo origin del stock.picking.
const OriginLabel = "Transferencia desde App Scanner"

// TransferUseCase construye transferencias internas en Odoo a partir de un
// multiconjunto de códigos escaneados. Todo fallo del gateway se degrada a
// un resultado success=false con mensaje; nunca propaga error al handler.
type TransferUseCase struct {
	gateway     repository.ErpGateway
	log         *logger.Logger
	maxQty      int // tope de cantidad por línea
	maxDistinct int // tope de códigos distintos por transferencia
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(gateway repository.ErpGateway, log *logger.Logger, maxQty, maxDistinct int) *TransferUseCase {
	if maxQty <= 0 {
		maxQty = 100
	}
	if maxDistinct <= 0 {
		maxDistinct = 20
	}
	return &TransferUseCase{gateway: gateway, log: log, maxQty: maxQty, maxDistinct: maxDistinct}
}

// Create ejecuta el flujo completo: truncar, crear picking, resolver códigos,
// crear movimientos en lotes, confirmar; o borrar el picking si ninguna línea
// resolvió. Cada llamada crea una transferencia nueva: no hay deduplicación.
func (uc *TransferUseCase) Create(ctx context.Context, sourceID, destID int64, codes *scan.Multiset) dto.TransferResultResponse {
	if sourceID == 0 || destID == 0 {
		return dto.TransferResultResponse{Success: false, Message: domain.ErrMissingLocation.Error()}
	}
	if codes == nil || codes.Distinct() == 0 {
		return dto.TransferResultResponse{Success: false, Message: "no se han proporcionado códigos de barras"}
	}

	var warnings []string

	// Truncar códigos distintos al tope configurado. El orden de primera
	// aparición hace el corte determinista; los excedentes se descartan y
	// se avisa, no se difieren.
	ordered := codes.Codes()
	if len(ordered) > uc.maxDistinct {
		dropped := len(ordered) - uc.maxDistinct
		ordered = ordered[:uc.maxDistinct]
		warnings = append(warnings, fmt.Sprintf(
			"se descartaron %d códigos distintos por superar el máximo de %d por transferencia", dropped, uc.maxDistinct))
		uc.log.Warn().Int("descartados", dropped).Int("max", uc.maxDistinct).
			Msg("truncado el número de códigos distintos")
	}

	transferID, err := uc.gateway.CreateTransfer(ctx, sourceID, destID, OriginLabel)
	if err != nil {
		return dto.TransferResultResponse{Success: false, Message: err.Error(), Warnings: warnings}
	}

	var (
		lines    []repository.MoveLine
		notFound []string
	)
	for _, code := range ordered {
		product, err := uc.gateway.FindProductByBarcode(ctx, code)
		if err != nil {
			return dto.TransferResultResponse{Success: false, Message: err.Error(), Warnings: warnings}
		}
		if product == nil {
			notFound = append(notFound, code)
			continue
		}

		qty := codes.Count(code)
		if qty > uc.maxQty {
			warnings = append(warnings, fmt.Sprintf(
				"cantidad de %s reducida de %d a %d", code, qty, uc.maxQty))
			uc.log.Warn().Str("barcode", code).Int("solicitado", qty).Int("max", uc.maxQty).
				Msg("cantidad por línea truncada")
			qty = uc.maxQty
		}

		lines = append(lines, repository.MoveLine{
			ProductID: product.ID,
			Barcode:   code,
			Quantity:  float64(qty),
			UoMID:     product.UoMOrDefault(),
		})
	}

	// Sin líneas válidas no debe quedar un picking vacío en Odoo.
	if len(lines) == 0 {
		if err := uc.gateway.DeleteTransfer(ctx, transferID); err != nil {
			uc.log.Error().Err(err).Int64("transfer_id", transferID).
				Msg("no se pudo eliminar la transferencia vacía")
		}
		return dto.TransferResultResponse{
			Success:  false,
			Message:  "no se encontraron productos válidos",
			NotFound: notFound,
			Warnings: warnings,
		}
	}

	if err := uc.gateway.CreateMovements(ctx, transferID, sourceID, destID, lines); err != nil {
		return dto.TransferResultResponse{Success: false, Message: err.Error(), NotFound: notFound, Warnings: warnings}
	}
	if err := uc.gateway.ConfirmTransfer(ctx, transferID); err != nil {
		return dto.TransferResultResponse{Success: false, Message: err.Error(), NotFound: notFound, Warnings: warnings}
	}

	uc.log.Info().Int64("transfer_id", transferID).Int("lineas", len(lines)).
		Int("no_encontrados", len(notFound)).Msg("transferencia creada y confirmada")

	return dto.TransferResultResponse{
		Success:       true,
		TransferID:    transferID,
		ProductsCount: len(lines),
		NotFound:      notFound,
		Warnings:      warnings,
	}
}

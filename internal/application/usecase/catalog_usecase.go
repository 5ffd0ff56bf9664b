package usecase

import (
	"context"
	"fmt"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/internal/domain"
	"github.com/ithesk/odoo-scanner/internal/domain/repository"
)

// CatalogUseCase lecturas de catálogo contra Odoo: ubicaciones internas y
// resolución puntual de productos para la interfaz del operador.
type CatalogUseCase struct {
	gateway repository.ErpGateway
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(gateway repository.ErpGateway) *CatalogUseCase {
	return &CatalogUseCase{gateway: gateway}
}

// Locations ubicaciones internas seleccionables como origen/destino.
func (uc *CatalogUseCase) Locations(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := uc.gateway.FindInternalLocations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, dto.LocationResponse{
			ID:           loc.ID,
			Name:         loc.Name,
			CompleteName: loc.CompleteName,
		})
	}
	return out, nil
}

// ProductByBarcode resuelve un código a producto para la consulta AJAX.
func (uc *CatalogUseCase) ProductByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.gateway.FindProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto con código %s", domain.ErrNotFound, barcode)
	}
	return &dto.ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Barcode:      product.Barcode,
		DefaultCode:  product.DefaultCode,
		Price:        product.Price.StringFixed(2),
		QtyAvailable: product.QtyAvailable,
	}, nil
}

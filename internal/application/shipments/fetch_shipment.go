package shipments

import (
	"github.com/jhoicas/restock-api/internal/application/dto"
	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

// FetchShipmentUseCase lee un envío por id limitado al comerciante dueño.
type FetchShipmentUseCase struct {
	shipmentRepo repository.RestockingShipmentRepository
	providerRepo repository.ShipmentProviderRepository
	skuRepo      repository.SkuRepository
}

// NewFetchShipmentUseCase construye el caso de uso con repos atados al pool.
func NewFetchShipmentUseCase(
	shipmentRepo repository.RestockingShipmentRepository,
	providerRepo repository.ShipmentProviderRepository,
	skuRepo repository.SkuRepository,
) *FetchShipmentUseCase {
	return &FetchShipmentUseCase{
		shipmentRepo: shipmentRepo,
		providerRepo: providerRepo,
		skuRepo:      skuRepo,
	}
}

// Fetch devuelve la vista extendida del agregado o (nil, nil) si el envío no
// existe o pertenece a otro comerciante.
func (uc *FetchShipmentUseCase) Fetch(id int64, merchant *entity.Merchant) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipmentRepo.GetByIDAndMerchant(id, merchant.ID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, nil
	}

	provider, err := uc.providerRepo.GetByID(shipment.ShipmentProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		provider = &entity.ShipmentProvider{ID: shipment.ShipmentProviderID}
	}

	skuNames := make(map[int64]string, len(shipment.Items))
	for _, item := range shipment.Items {
		if _, ok := skuNames[item.SkuID]; ok {
			continue
		}
		sku, err := uc.skuRepo.GetByID(item.SkuID)
		if err != nil {
			return nil, err
		}
		if sku != nil {
			skuNames[item.SkuID] = sku.Name
		}
	}

	return dto.NewShipmentResponse(shipment, provider, skuNames), nil
}

package shipments

import (
	"context"
	"time"

	"github.com/jhoicas/restock-api/internal/application/dto"
	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

// CreateShipmentUseCase crea un envío de reabastecimiento de forma transaccional:
// valida el payload crudo, verifica la existencia del proveedor y de cada SKU
// dentro de la transacción e inserta la fila del envío más una fila por línea.
// Cualquier falla aborta la transacción completa; nunca quedan filas parciales.
type CreateShipmentUseCase struct {
	txRunner TxRunner
	clock    Clock
}

// NewCreateShipmentUseCase construye el caso de uso. clock nil usa el reloj del sistema.
func NewCreateShipmentUseCase(txRunner TxRunner, clock Clock) *CreateShipmentUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &CreateShipmentUseCase{txRunner: txRunner, clock: clock}
}

// Create valida y persiste el envío con sus líneas para el comerciante dado.
// merchant viene del contexto autenticado del caller, nunca del payload.
// Devuelve la vista extendida del agregado o un *ValidationError con el
// mensaje "Validation failed: ..." de la primera falla encontrada.
func (uc *CreateShipmentUseCase) Create(
	ctx context.Context,
	merchant *entity.Merchant,
	payload map[string]any,
) (*dto.ShipmentResponse, error) {

	// 1. Contrato: forma, tipos y reglas de negocio. Sin tocar la BD.
	// Se recolectan todas las fallas pero hacia afuera se reporta solo la primera.
	input, fieldErrs := ValidateCreatePayload(payload, uc.clock.Today())
	if len(fieldErrs) > 0 {
		return nil, newValidationError(fieldErrs[0].Full())
	}

	now := time.Now()
	shipment := &entity.RestockingShipment{
		MerchantID:           merchant.ID,
		ShipmentProviderID:   input.ShipmentProviderID,
		ShippingCost:         input.ShippingCost,
		EstimatedArrivalDate: input.EstimatedArrivalDate,
		TrackingCode:         input.TrackingCode,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// 2. Transacción única: pre-chequeos de existencia + inserts.
	// Los pre-chequeos van dentro de la tx para traducir el error de referencia
	// sin depender del parseo de violaciones de FK del driver.
	var resp *dto.ShipmentResponse
	err := uc.txRunner.Run(ctx, func(
		shipmentRepo repository.RestockingShipmentRepository,
		providerRepo repository.ShipmentProviderRepository,
		skuRepo repository.SkuRepository,
	) error {
		provider, err := providerRepo.GetByID(input.ShipmentProviderID)
		if err != nil {
			return err
		}
		if provider == nil {
			return newValidationError(reasonProviderMustExist)
		}

		if err := shipmentRepo.Create(shipment); err != nil {
			return err
		}

		// Líneas en el orden del payload. La primera referencia inválida
		// aborta todo, aunque líneas anteriores fueran válidas.
		skuNames := make(map[int64]string, len(input.Skus))
		for _, line := range input.Skus {
			sku, err := skuRepo.GetByID(line.ID)
			if err != nil {
				return err
			}
			if sku == nil {
				return newValidationError(reasonSkuMustExist)
			}
			skuNames[sku.ID] = sku.Name

			item := &entity.RestockingShipmentItem{
				RestockingShipmentID: shipment.ID,
				SkuID:                line.ID,
				Quantity:             line.Quantity,
				CreatedAt:            now,
			}
			if err := shipmentRepo.CreateItem(item); err != nil {
				return err
			}
			shipment.Items = append(shipment.Items, *item)
		}

		resp = dto.NewShipmentResponse(shipment, provider, skuNames)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

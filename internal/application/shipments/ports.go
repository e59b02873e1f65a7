package shipments

import (
	"context"

	"github.com/jhoicas/restock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el envío y todas sus líneas se
// persistan de forma atómica: o se insertan todas las filas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		shipmentRepo repository.RestockingShipmentRepository,
		providerRepo repository.ShipmentProviderRepository,
		skuRepo repository.SkuRepository,
	) error) error
}

package repository

import "github.com/jhoicas/restock-api/internal/domain/entity"

// RestockingShipmentRepository define el puerto de persistencia para el agregado
// RestockingShipment. Create y CreateItem se invocan siempre dentro de la misma
// transacción (ver el TxRunner del caso de uso de creación).
type RestockingShipmentRepository interface {
	// Create inserta la fila del envío y asigna shipment.ID.
	Create(shipment *entity.RestockingShipment) error
	// CreateItem inserta una línea del envío y asigna item.ID.
	CreateItem(item *entity.RestockingShipmentItem) error
	// GetByIDAndMerchant carga el envío con sus líneas, limitado al comerciante
	// dueño. Devuelve (nil, nil) si no existe o pertenece a otro comerciante.
	GetByIDAndMerchant(id int64, merchantID string) (*entity.RestockingShipment, error)
}

package repository

import "github.com/jhoicas/restock-api/internal/domain/entity"

// ShipmentProviderRepository define el puerto de persistencia para ShipmentProvider.
type ShipmentProviderRepository interface {
	Create(provider *entity.ShipmentProvider) error
	GetByID(id int64) (*entity.ShipmentProvider, error)
}

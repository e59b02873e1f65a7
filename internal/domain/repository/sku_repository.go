package repository

import "github.com/jhoicas/restock-api/internal/domain/entity"

// SkuRepository define el puerto de persistencia para Sku.
type SkuRepository interface {
	Create(sku *entity.Sku) error
	GetByID(id int64) (*entity.Sku, error)
}

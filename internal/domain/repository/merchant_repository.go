package repository

import "github.com/jhoicas/restock-api/internal/domain/entity"

// MerchantRepository define el puerto de persistencia para Merchant.
type MerchantRepository interface {
	GetByID(id string) (*entity.Merchant, error)
	// GetByUserID resuelve el comerciante de un usuario vía merchant_accounts.
	// Devuelve (nil, nil) si el usuario no tiene cuenta configurada.
	GetByUserID(userID string) (*entity.Merchant, error)
}

package merchants

import (
	"github.com/jhoicas/restock-api/internal/domain"
	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

// FetchUserMerchantUseCase resuelve el comerciante asociado a un usuario
// autenticado. Es la precondición de todos los endpoints de envíos: sin
// comerciante configurado la operación no llega a ejecutarse.
type FetchUserMerchantUseCase struct {
	merchantRepo repository.MerchantRepository
}

// NewFetchUserMerchantUseCase construye el caso de uso.
func NewFetchUserMerchantUseCase(merchantRepo repository.MerchantRepository) *FetchUserMerchantUseCase {
	return &FetchUserMerchantUseCase{merchantRepo: merchantRepo}
}

// Fetch devuelve el comerciante del usuario o ErrMerchantNotConfigured si el
// usuario no tiene cuenta de comerciante.
func (uc *FetchUserMerchantUseCase) Fetch(userID string) (*entity.Merchant, error) {
	merchant, err := uc.merchantRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrMerchantNotConfigured
	}
	return merchant, nil
}

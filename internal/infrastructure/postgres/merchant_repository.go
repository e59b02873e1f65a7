package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

var _ repository.MerchantRepository = (*MerchantRepo)(nil)

// MerchantRepo implementación de MerchantRepository sobre PostgreSQL.
type MerchantRepo struct {
	q Querier
}

// NewMerchantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMerchantRepository(q Querier) *MerchantRepo {
	return &MerchantRepo{q: q}
}

// GetByID obtiene un comerciante por ID. Devuelve (nil, nil) si no existe.
func (r *MerchantRepo) GetByID(id string) (*entity.Merchant, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM merchants WHERE id = $1`
	var m entity.Merchant
	err := r.q.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant: %w", err)
	}
	return &m, nil
}

// GetByUserID resuelve el comerciante de un usuario vía merchant_accounts.
// Devuelve (nil, nil) si el usuario no tiene cuenta configurada.
func (r *MerchantRepo) GetByUserID(userID string) (*entity.Merchant, error) {
	query := `
		SELECT m.id, m.name, m.created_at, m.updated_at
		FROM merchants m
		JOIN merchant_accounts ma ON ma.merchant_id = m.id
		WHERE ma.user_id = $1`
	var m entity.Merchant
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by user: %w", err)
	}
	return &m, nil
}

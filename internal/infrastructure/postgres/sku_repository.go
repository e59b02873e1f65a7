package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

var _ repository.SkuRepository = (*SkuRepo)(nil)

// SkuRepo implementación sobre PostgreSQL (usable con pool o tx).
type SkuRepo struct {
	q Querier
}

// NewSkuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSkuRepository(q Querier) *SkuRepo {
	return &SkuRepo{q: q}
}

// Create persiste un SKU y asigna el id generado.
func (r *SkuRepo) Create(sku *entity.Sku) error {
	query := `
		INSERT INTO skus (name, created_at)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, sku.Name, sku.CreatedAt).Scan(&sku.ID)
	if err != nil {
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID. Devuelve (nil, nil) si no existe.
func (r *SkuRepo) GetByID(id int64) (*entity.Sku, error) {
	query := `
		SELECT id, name, created_at
		FROM skus WHERE id = $1`
	var s entity.Sku
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

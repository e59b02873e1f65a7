package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

var _ repository.ShipmentProviderRepository = (*ShipmentProviderRepo)(nil)

// ShipmentProviderRepo implementación sobre PostgreSQL (usable con pool o tx).
type ShipmentProviderRepo struct {
	q Querier
}

// NewShipmentProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentProviderRepository(q Querier) *ShipmentProviderRepo {
	return &ShipmentProviderRepo{q: q}
}

// Create persiste un proveedor de envíos y asigna el id generado.
func (r *ShipmentProviderRepo) Create(provider *entity.ShipmentProvider) error {
	query := `
		INSERT INTO shipment_providers (name, created_at)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, provider.Name, provider.CreatedAt).Scan(&provider.ID)
	if err != nil {
		return fmt.Errorf("insert shipment provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *ShipmentProviderRepo) GetByID(id int64) (*entity.ShipmentProvider, error) {
	query := `
		SELECT id, name, created_at
		FROM shipment_providers WHERE id = $1`
	var p entity.ShipmentProvider
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment provider: %w", err)
	}
	return &p, nil
}

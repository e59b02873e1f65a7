package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restock-api/internal/domain"
	"github.com/jhoicas/restock-api/internal/domain/entity"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

var _ repository.RestockingShipmentRepository = (*RestockingShipmentRepo)(nil)

// RestockingShipmentRepo implementación sobre PostgreSQL (usable con pool o tx).
// Create y CreateItem deben invocarse con un Querier transaccional para que el
// agregado se persista de forma atómica.
type RestockingShipmentRepo struct {
	q Querier
}

// NewRestockingShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestockingShipmentRepository(q Querier) *RestockingShipmentRepo {
	return &RestockingShipmentRepo{q: q}
}

// Create inserta la fila del envío y asigna el id generado.
func (r *RestockingShipmentRepo) Create(shipment *entity.RestockingShipment) error {
	query := `
		INSERT INTO restocking_shipments
			(merchant_id, shipment_provider_id, shipping_cost, estimated_arrival_date, tracking_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		shipment.MerchantID, shipment.ShipmentProviderID, shipment.ShippingCost,
		shipment.EstimatedArrivalDate, shipment.TrackingCode, shipment.Status,
		shipment.CreatedAt, shipment.UpdatedAt,
	).Scan(&shipment.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert restocking shipment: %w", err)
	}
	return nil
}

// CreateItem inserta una línea del envío y asigna el id generado.
func (r *RestockingShipmentRepo) CreateItem(item *entity.RestockingShipmentItem) error {
	query := `
		INSERT INTO restocking_shipment_items
			(restocking_shipment_id, sku_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.RestockingShipmentID, item.SkuID, item.Quantity, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert restocking shipment item: %w", err)
	}
	return nil
}

// GetByIDAndMerchant carga el envío con sus líneas (en orden de inserción),
// limitado al comerciante dueño.
func (r *RestockingShipmentRepo) GetByIDAndMerchant(id int64, merchantID string) (*entity.RestockingShipment, error) {
	query := `
		SELECT id, merchant_id, shipment_provider_id, shipping_cost, estimated_arrival_date, tracking_code, status, created_at, updated_at
		FROM restocking_shipments WHERE id = $1 AND merchant_id = $2`
	var s entity.RestockingShipment
	err := r.q.QueryRow(context.Background(), query, id, merchantID).Scan(
		&s.ID, &s.MerchantID, &s.ShipmentProviderID, &s.ShippingCost,
		&s.EstimatedArrivalDate, &s.TrackingCode, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restocking shipment: %w", err)
	}

	itemsQuery := `
		SELECT id, restocking_shipment_id, sku_id, quantity, created_at
		FROM restocking_shipment_items WHERE restocking_shipment_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), itemsQuery, s.ID)
	if err != nil {
		return nil, fmt.Errorf("list shipment items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.RestockingShipmentItem
		if err := rows.Scan(&it.ID, &it.RestockingShipmentID, &it.SkuID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shipment item: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

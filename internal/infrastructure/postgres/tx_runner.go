package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/restock-api/internal/application/shipments"
	"github.com/jhoicas/restock-api/internal/domain/repository"
)

// Ensure TxRunner implements shipments.TxRunner.
var _ shipments.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Si fn devuelve error no se persiste ninguna fila.
func (r *TxRunner) Run(ctx context.Context, fn func(
	shipmentRepo repository.RestockingShipmentRepository,
	providerRepo repository.ShipmentProviderRepository,
	skuRepo repository.SkuRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipmentRepo := NewRestockingShipmentRepository(tx)
	providerRepo := NewShipmentProviderRepository(tx)
	skuRepo := NewSkuRepository(tx)

	if err := fn(shipmentRepo, providerRepo, skuRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

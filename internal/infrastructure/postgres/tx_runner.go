package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bodegacl/bodega-api/internal/application/stockengine"
)

var _ stockengine.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, con todos
// los repositorios atados a la misma tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback. Cualquier error deja documento, líneas y stock intactos.
func (r *TxRunner) Run(ctx context.Context, fn func(repos stockengine.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := stockengine.Repos{
		Products:     NewProductRepository(tx),
		Dispatches:   NewDispatchRepository(tx),
		Receipts:     NewReceiptRepository(tx),
		Productions:  NewProductionRepository(tx),
		CreditNotes:  NewCreditNoteRepository(tx),
		Consumptions: NewInternalConsumptionRepository(tx),
		Clients:      NewClientRepository(tx),
		Drivers:      NewDriverRepository(tx),
		Suppliers:    NewSupplierRepository(tx),
		Operators:    NewOperatorRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

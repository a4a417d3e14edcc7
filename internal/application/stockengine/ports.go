package stockengine

import (
	"context"

	"github.com/bodegacl/bodega-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción. El motor de
// stock y los casos de uso solo mutan a través de este paquete de repos.
type Repos struct {
	Products     repository.ProductRepository
	Dispatches   repository.DispatchRepository
	Receipts     repository.ReceiptRepository
	Productions  repository.ProductionRepository
	CreditNotes  repository.CreditNoteRepository
	Consumptions repository.InternalConsumptionRepository
	Clients      repository.ClientRepository
	Drivers      repository.DriverRepository
	Suppliers    repository.SupplierRepository
	Operators    repository.OperatorRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cualquier error hace rollback completo:
// documento, líneas y stock quedan intactos.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

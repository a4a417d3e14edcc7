package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/pkg/logger"
)

func newMasterFixture(t *testing.T) (*fakeStore, *MasterUseCase) {
	t.Helper()
	store := newFakeStore()
	return store, NewMasterUseCase(&fakeTx{store}, logger.Nop())
}

func TestMasterCreateYDuplicados(t *testing.T) {
	_, uc := newMasterFixture(t)
	ctx := context.Background()

	c, err := uc.CreateClient(ctx, "ana", dto.NameRequest{Name: " Comercial  Sur "})
	require.NoError(t, err)
	assert.Equal(t, "Comercial Sur", c.Name)

	_, err = uc.CreateClient(ctx, "ana", dto.NameRequest{Name: "comercial sur"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.CreateClient(ctx, "ana", dto.NameRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un chofer con despachos asociados no se puede eliminar.
func TestMasterDeleteDriverReferenciado(t *testing.T) {
	store, uc := newMasterFixture(t)
	ctx := context.Background()
	log := logger.Nop()

	driver, err := uc.CreateDriver(ctx, "ana", dto.NameRequest{Name: "Pedro"})
	require.NoError(t, err)

	duc := NewDispatchUseCase(&fakeTx{store}, stockengine.NewApplier(log), log)
	d, err := duc.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-1", Client: "Sur", DriverID: driver.ID,
		Lines: []dto.Line{line("vaso", 1)},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteDriver(ctx, driver.ID), domain.ErrReferenced)

	// Sin despachos, el borrado procede.
	require.NoError(t, duc.Delete(ctx, d.ID))
	require.NoError(t, uc.DeleteDriver(ctx, driver.ID))
}

// Un cliente referenciado por despachos o notas de crédito queda protegido.
func TestMasterDeleteClientReferenciado(t *testing.T) {
	store, uc := newMasterFixture(t)
	ctx := context.Background()
	log := logger.Nop()

	cnuc := NewCreditNoteUseCase(&fakeTx{store}, stockengine.NewApplier(log), log)
	cn, err := cnuc.Create(ctx, "ana", dto.CreateCreditNoteRequest{
		Client: "Comercial Sur", OrderNumber: "OC-1", InvoiceNumber: "F-1",
		CreditNoteNumber: "NC-1", Reason: "devolución",
		Lines: []dto.Line{line("vaso", 1)},
	})
	require.NoError(t, err)

	var clientID string
	for id := range store.clients {
		clientID = id
	}
	require.NotEmpty(t, clientID)

	assert.ErrorIs(t, uc.DeleteClient(ctx, clientID), domain.ErrReferenced)

	require.NoError(t, cnuc.Delete(ctx, cn.ID))
	require.NoError(t, uc.DeleteClient(ctx, clientID))
}

func TestMasterDeleteSupplierReferenciado(t *testing.T) {
	store, uc := newMasterFixture(t)
	ctx := context.Background()
	log := logger.Nop()

	ruc := NewReceiptUseCase(&fakeTx{store}, stockengine.NewApplier(log), log)
	_, err := ruc.Create(ctx, "ana", dto.CreateReceiptRequest{
		Order: "OC-1", Supplier: "Envases", Lines: []dto.Line{line("vaso", 1)},
	})
	require.NoError(t, err)

	var supplierID string
	for id := range store.suppliers {
		supplierID = id
	}
	require.NotEmpty(t, supplierID)

	assert.ErrorIs(t, uc.DeleteSupplier(ctx, supplierID), domain.ErrReferenced)
}

func TestMasterListYUpdate(t *testing.T) {
	_, uc := newMasterFixture(t)
	ctx := context.Background()

	o, err := uc.CreateOperator(ctx, "ana", dto.NameRequest{Name: "Juan"})
	require.NoError(t, err)

	updated, err := uc.UpdateOperator(ctx, o.ID, dto.NameRequest{Name: "Juan Soto"})
	require.NoError(t, err)
	assert.Equal(t, "Juan Soto", updated.Name)

	list, err := uc.ListOperators(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Juan Soto", list[0].Name)

	_, err = uc.UpdateOperator(ctx, "no-existe", dto.NameRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/pkg/logger"
)

func newReceiptFixture(t *testing.T) (*fakeStore, *ReceiptUseCase) {
	t.Helper()
	store := newFakeStore()
	log := logger.Nop()
	return store, NewReceiptUseCase(&fakeTx{store}, stockengine.NewApplier(log), log)
}

func TestReceiptCreateSumaStock(t *testing.T) {
	store, uc := newReceiptFixture(t)

	resp, err := uc.Create(context.Background(), "ana", dto.CreateReceiptRequest{
		Order:    "OC-300",
		Supplier: "Envases Ltda",
		Lines:    []dto.Line{line("vaso", 5)},
	})
	require.NoError(t, err)

	// El producto y el proveedor se crean implícitamente.
	assert.Equal(t, "5", store.stockOf("vaso").String())
	assert.Equal(t, "Envases Ltda", resp.Supplier)
	assert.Equal(t, entity.ReceiptStatusPending, resp.Status)
	require.Len(t, store.suppliers, 1)

	p, err := (&fakeProducts{store}).GetByName("vaso")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.CategoryDefault, p.Category)
}

func TestReceiptCreateValidaciones(t *testing.T) {
	_, uc := newReceiptFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "ana", dto.CreateReceiptRequest{
		Supplier: "Envases", Lines: []dto.Line{line("vaso", 5)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "ana", dto.CreateReceiptRequest{
		Order: "OC-1", Supplier: "Envases",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiptOrdenDuplicada(t *testing.T) {
	_, uc := newReceiptFixture(t)
	ctx := context.Background()

	req := dto.CreateReceiptRequest{
		Order: "OC-55", Supplier: "Envases", Lines: []dto.Line{line("vaso", 5)},
	}
	_, err := uc.Create(ctx, "ana", req)
	require.NoError(t, err)

	_, err = uc.Create(ctx, "ana", req)
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)

	req.Force = true
	_, err = uc.Create(ctx, "ana", req)
	assert.NoError(t, err)
}

func TestReceiptUpdateAjustaPorDiferencia(t *testing.T) {
	store, uc := newReceiptFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "ana", dto.CreateReceiptRequest{
		Order: "OC-1", Supplier: "Envases", Lines: []dto.Line{line("vaso", 10)},
	})
	require.NoError(t, err)
	assert.Equal(t, "10", store.stockOf("vaso").String())

	_, err = uc.Update(ctx, resp.ID, "ana", dto.UpdateReceiptRequest{
		Order: "OC-1", Supplier: "Envases", Lines: []dto.Line{line("vaso", 6)},
	})
	require.NoError(t, err)
	assert.Equal(t, "6", store.stockOf("vaso").String())
}

// Revertir una entrada nunca deja stock negativo: si parte de lo recibido ya
// salió por despachos, el saldo se trunca a cero.
func TestReceiptDeleteTruncaACero(t *testing.T) {
	store, uc := newReceiptFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "ana", dto.CreateReceiptRequest{
		Order: "OC-1", Supplier: "Envases", Lines: []dto.Line{line("vaso", 10)},
	})
	require.NoError(t, err)

	// Simula salidas posteriores: quedan 4 de los 10 recibidos.
	for _, p := range store.products {
		p.Stock = decimal.NewFromInt(4)
	}

	require.NoError(t, uc.Delete(ctx, resp.ID))
	assert.Equal(t, "0", store.stockOf("vaso").String())
}

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
	"github.com/bodegacl/bodega-api/pkg/logger"
)

func newCreditNoteFixture(t *testing.T) (*fakeStore, *CreditNoteUseCase) {
	t.Helper()
	store := newFakeStore()
	log := logger.Nop()
	return store, NewCreditNoteUseCase(&fakeTx{store}, stockengine.NewApplier(log), log)
}

func creditNoteReq() dto.CreateCreditNoteRequest {
	return dto.CreateCreditNoteRequest{
		Client:           "Comercial Sur",
		OrderNumber:      "OC-10",
		InvoiceNumber:    "F-200",
		CreditNoteNumber: "NC-77",
		Reason:           "mercadería dañada",
		Lines:            []dto.Line{line("vaso", 6)},
	}
}

func TestCreditNoteCreateSumaStock(t *testing.T) {
	store, uc := newCreditNoteFixture(t)
	store.seedProduct("vaso", 10)

	resp, err := uc.Create(context.Background(), "ana", creditNoteReq())
	require.NoError(t, err)

	assert.Equal(t, "16", store.stockOf("vaso").String())
	assert.Equal(t, "Comercial Sur", resp.Client)
	assert.Equal(t, "NC-77", resp.CreditNoteNumber)
}

func TestCreditNoteCreateValidaciones(t *testing.T) {
	_, uc := newCreditNoteFixture(t)

	// Todos los campos son obligatorios.
	casos := []func(*dto.CreateCreditNoteRequest){
		func(r *dto.CreateCreditNoteRequest) { r.Client = "" },
		func(r *dto.CreateCreditNoteRequest) { r.OrderNumber = "" },
		func(r *dto.CreateCreditNoteRequest) { r.InvoiceNumber = "" },
		func(r *dto.CreateCreditNoteRequest) { r.CreditNoteNumber = "" },
		func(r *dto.CreateCreditNoteRequest) { r.Reason = "" },
		func(r *dto.CreateCreditNoteRequest) { r.Lines = nil },
	}
	for _, mut := range casos {
		req := creditNoteReq()
		mut(&req)
		_, err := uc.Create(context.Background(), "ana", req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Borrar una nota de crédito revierte el reingreso truncando a cero si el
// stock ya bajó por otras salidas.
func TestCreditNoteDeleteTruncaACero(t *testing.T) {
	store, uc := newCreditNoteFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "ana", creditNoteReq())
	require.NoError(t, err)
	assert.Equal(t, "6", store.stockOf("vaso").String())

	for _, p := range store.products {
		p.Stock = decimal.NewFromInt(2)
	}

	require.NoError(t, uc.Delete(ctx, resp.ID))
	assert.Equal(t, "0", store.stockOf("vaso").String())
}

func TestCreditNoteUpdateAjustaPorDiferencia(t *testing.T) {
	store, uc := newCreditNoteFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "ana", creditNoteReq())
	require.NoError(t, err)

	req := creditNoteReq()
	req.Lines = []dto.Line{line("vaso", 2)}
	_, err = uc.Update(ctx, resp.ID, "ana", req)
	require.NoError(t, err)
	assert.Equal(t, "2", store.stockOf("vaso").String())
}

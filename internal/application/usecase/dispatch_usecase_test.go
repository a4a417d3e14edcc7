package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/pkg/logger"
	"github.com/bodegacl/bodega-api/pkg/timezone"
)

func line(name string, qty int64) dto.Line {
	q := decimal.NewFromInt(qty)
	return dto.Line{Name: name, Quantity: &q, Unit: "unidad"}
}

func newDispatchFixture(t *testing.T) (*fakeStore, *DispatchUseCase, *entity.Driver) {
	t.Helper()
	store := newFakeStore()
	driver := store.seedDriver("Pedro")
	log := logger.Nop()
	uc := NewDispatchUseCase(&fakeTx{store}, stockengine.NewApplier(log), log)
	return store, uc, driver
}

func TestDispatchCreateDescuentaStock(t *testing.T) {
	store, uc, driver := newDispatchFixture(t)
	store.seedProduct("vaso", 100)

	resp, err := uc.Create(context.Background(), "ana", dto.CreateDispatchRequest{
		Order:    "OC-100",
		Client:   "Comercial Sur",
		DriverID: driver.ID,
		Lines:    []dto.Line{line("vaso", 10)},
	})
	require.NoError(t, err)

	assert.Equal(t, "90", store.stockOf("vaso").String())
	assert.Equal(t, entity.DispatchStatusPending, resp.Status)
	assert.Equal(t, "Comercial Sur", resp.Client) // cliente creado implícitamente
	assert.Equal(t, "Pedro", resp.Driver)
}

func TestDispatchCreateValidaciones(t *testing.T) {
	_, uc, driver := newDispatchFixture(t)

	// Campos requeridos.
	_, err := uc.Create(context.Background(), "ana", dto.CreateDispatchRequest{
		Client: "X", DriverID: driver.ID, Lines: []dto.Line{line("vaso", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Línea incompleta (sin cantidad).
	_, err = uc.Create(context.Background(), "ana", dto.CreateDispatchRequest{
		Order: "OC-1", Client: "X", DriverID: driver.ID,
		Lines: []dto.Line{{Name: "vaso", Unit: "caja"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Chofer inexistente: no se crea implícitamente.
	_, err = uc.Create(context.Background(), "ana", dto.CreateDispatchRequest{
		Order: "OC-1", Client: "X", DriverID: "no-existe",
		Lines: []dto.Line{line("vaso", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDispatchOrdenDuplicada(t *testing.T) {
	_, uc, driver := newDispatchFixture(t)
	ctx := context.Background()

	req := dto.CreateDispatchRequest{
		Order: "OC-42", Client: "Sur", DriverID: driver.ID,
		Lines: []dto.Line{line("vaso", 1)},
	}
	_, err := uc.Create(ctx, "ana", req)
	require.NoError(t, err)

	_, err = uc.Create(ctx, "ana", req)
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)

	// force salta la guarda.
	req.Force = true
	_, err = uc.Create(ctx, "ana", req)
	assert.NoError(t, err)
}

// Escenario de reconciliación completo: crear rebaja, actualizar ajusta solo
// por la diferencia y borrar restaura el stock original exacto.
func TestDispatchCicloCompleto(t *testing.T) {
	store, uc, driver := newDispatchFixture(t)
	store.seedProduct("vaso", 100)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-7", Client: "Sur", DriverID: driver.ID,
		Lines: []dto.Line{line("Vaso", 10)},
	})
	require.NoError(t, err)
	assert.Equal(t, "90", store.stockOf("vaso").String())

	_, err = uc.Update(ctx, resp.ID, "ana", dto.UpdateDispatchRequest{
		Lines: []dto.Line{line("Vaso", 4)},
	})
	require.NoError(t, err)
	assert.Equal(t, "96", store.stockOf("vaso").String())

	require.NoError(t, uc.Delete(ctx, resp.ID))
	assert.Equal(t, "100", store.stockOf("vaso").String())
}

// Actualizar líneas debe dejar el mismo stock que borrar y recrear el
// documento con las líneas nuevas.
func TestDispatchUpdateEquivaleABorrarYRecrear(t *testing.T) {
	ctx := context.Background()
	oldLines := []dto.Line{line("vaso", 10), line("plato", 3)}
	newLines := []dto.Line{line("vaso", 4), line("bandeja", 2)}

	// Camino A: update en el lugar.
	storeA, ucA, driverA := newDispatchFixture(t)
	storeA.seedProduct("vaso", 100)
	storeA.seedProduct("plato", 50)
	storeA.seedProduct("bandeja", 20)
	respA, err := ucA.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-1", Client: "Sur", DriverID: driverA.ID, Lines: oldLines,
	})
	require.NoError(t, err)
	_, err = ucA.Update(ctx, respA.ID, "ana", dto.UpdateDispatchRequest{Lines: newLines})
	require.NoError(t, err)

	// Camino B: borrar y recrear.
	storeB, ucB, driverB := newDispatchFixture(t)
	storeB.seedProduct("vaso", 100)
	storeB.seedProduct("plato", 50)
	storeB.seedProduct("bandeja", 20)
	respB, err := ucB.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-1", Client: "Sur", DriverID: driverB.ID, Lines: oldLines,
	})
	require.NoError(t, err)
	require.NoError(t, ucB.Delete(ctx, respB.ID))
	_, err = ucB.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-1", Client: "Sur", DriverID: driverB.ID, Lines: newLines,
	})
	require.NoError(t, err)

	for _, name := range []string{"vaso", "plato", "bandeja"} {
		assert.True(t, storeA.stockOf(name).Equal(storeB.stockOf(name)),
			"stock de %s difiere: %s vs %s", name, storeA.stockOf(name), storeB.stockOf(name))
	}
}

// Nombres que difieren solo en mayúsculas o espacios refieren al mismo
// producto, y un despacho puede dejar el stock negativo.
func TestDispatchNombresEquivalentesYStockNegativo(t *testing.T) {
	store, uc, driver := newDispatchFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-1", Client: "Sur", DriverID: driver.ID,
		Lines: []dto.Line{line("Bolsa   Negra", 3)},
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-2", Client: "Sur", DriverID: driver.ID,
		Lines: []dto.Line{line("bolsa negra", 2)},
	})
	require.NoError(t, err)

	require.Len(t, store.products, 1)
	assert.Equal(t, "-5", store.stockOf("bolsa negra").String())
}

func TestDispatchEntregas(t *testing.T) {
	_, uc, driver := newDispatchFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "ana", dto.CreateDispatchRequest{
		Order: "OC-9", Client: "Sur", DriverID: driver.ID,
		Lines: []dto.Line{line("vaso", 1)},
	})
	require.NoError(t, err)

	marked, err := uc.MarkDriverDelivered(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStatusDriverDelivered, marked.Status)
	assert.True(t, marked.DeliveredDriver)
	assert.False(t, marked.DeliveredClient)

	marked, err = uc.MarkClientDelivered(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStatusClientDelivered, marked.Status)
	assert.True(t, marked.DeliveredClient)

	// entregado_cliente es terminal: marcar chofer de nuevo es conflicto.
	_, err = uc.MarkDriverDelivered(ctx, resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDispatchMonthlyCounts(t *testing.T) {
	_, uc, driver := newDispatchFixture(t)
	ctx := context.Background()

	for _, order := range []string{"OC-1", "OC-2"} {
		_, err := uc.Create(ctx, "ana", dto.CreateDispatchRequest{
			Order: order, Client: "Sur", DriverID: driver.ID,
			Lines: []dto.Line{line("vaso", 1)},
		})
		require.NoError(t, err)
	}

	counts, err := uc.MonthlyCounts(ctx, "ana")
	require.NoError(t, err)

	day := timezone.LocalDay(time.Now().UTC())
	assert.Equal(t, 2, counts[day-1])

	// Otro usuario no tiene despachos este mes.
	counts, err = uc.MonthlyCounts(ctx, "otro")
	require.NoError(t, err)
	assert.Equal(t, [31]int{}, counts)
}

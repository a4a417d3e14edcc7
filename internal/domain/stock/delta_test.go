package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
)

func line(name string, qty float64) entity.LineItem {
	return entity.LineItem{Name: name, Quantity: decimal.NewFromFloat(qty), Unit: "un"}
}

func TestSumByName_AcumulaNombresRepetidos(t *testing.T) {
	sums := stock.SumByName([]entity.LineItem{
		line("Vaso", 3),
		line("vaso", 2),
		line("Bolsa  Negra", 1.5),
	})

	require.Len(t, sums, 2)
	assert.True(t, sums["vaso"].Equal(decimal.NewFromInt(5)))
	assert.True(t, sums["bolsa negra"].Equal(decimal.NewFromFloat(1.5)))
}

func TestDiff_UnionDeNombres(t *testing.T) {
	oldLines := []entity.LineItem{line("Vaso", 10), line("Plato", 4)}
	newLines := []entity.LineItem{line("vaso", 4), line("Cuchara", 7)}

	deltas := stock.Diff(oldLines, newLines)

	require.Len(t, deltas, 3)
	// Cambió la cantidad: delta = nueva - antigua.
	assert.True(t, deltas["vaso"].Equal(decimal.NewFromInt(-6)))
	// Solo en las líneas antiguas: delta negativo igual a menos su suma.
	assert.True(t, deltas["plato"].Equal(decimal.NewFromInt(-4)))
	// Solo en las líneas nuevas: delta positivo igual a su suma.
	assert.True(t, deltas["cuchara"].Equal(decimal.NewFromInt(7)))
}

func TestDiff_SinCambiosProduceDeltasCero(t *testing.T) {
	lines := []entity.LineItem{line("Vaso", 10), line("VASO", 2)}

	deltas := stock.Diff(lines, []entity.LineItem{line("vaso", 12)})

	require.Len(t, deltas, 1)
	assert.True(t, deltas["vaso"].IsZero())
}

func TestDiff_ConjuntosVacios(t *testing.T) {
	assert.Empty(t, stock.Diff(nil, nil))

	deltas := stock.Diff(nil, []entity.LineItem{line("Vaso", 5)})
	assert.True(t, deltas["vaso"].Equal(decimal.NewFromInt(5)))

	deltas = stock.Diff([]entity.LineItem{line("Vaso", 5)}, nil)
	assert.True(t, deltas["vaso"].Equal(decimal.NewFromInt(-5)))
}

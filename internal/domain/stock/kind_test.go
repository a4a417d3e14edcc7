package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodegacl/bodega-api/internal/domain/stock"
)

// La convención de signo es un invariante fijo por tipo: despachos y
// consumos internos restan, recepciones, producciones y notas de crédito
// suman.
func TestKind_Sign(t *testing.T) {
	assert.EqualValues(t, -1, stock.KindDispatch.Sign())
	assert.EqualValues(t, -1, stock.KindInternalConsumption.Sign())
	assert.EqualValues(t, 1, stock.KindReceipt.Sign())
	assert.EqualValues(t, 1, stock.KindProduction.Sign())
	assert.EqualValues(t, 1, stock.KindCreditNote.Sign())
}

func TestKind_StockPolicy(t *testing.T) {
	assert.Equal(t, stock.ClampToZero, stock.KindReceipt.StockPolicy())
	assert.Equal(t, stock.ClampToZero, stock.KindProduction.StockPolicy())
	assert.Equal(t, stock.ClampToZero, stock.KindCreditNote.StockPolicy())
	assert.Equal(t, stock.AllowNegative, stock.KindDispatch.StockPolicy())
	assert.Equal(t, stock.AllowNegative, stock.KindInternalConsumption.StockPolicy())
}

func TestKind_OrderNumbered(t *testing.T) {
	assert.True(t, stock.KindDispatch.OrderNumbered())
	assert.True(t, stock.KindReceipt.OrderNumbered())
	assert.False(t, stock.KindProduction.OrderNumbered())
	assert.False(t, stock.KindCreditNote.OrderNumbered())
	assert.False(t, stock.KindInternalConsumption.OrderNumbered())
}

package stockengine

import (
	"github.com/shopspring/decimal"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
	"github.com/bodegacl/bodega-api/pkg/logger"
)

// Applier aplica ajustes firmados al contador de stock de cada producto,
// honrando la convención de signo y la política de stock negativo del tipo
// de documento. Bloquea la fila del producto (SELECT FOR UPDATE) para evitar
// lost updates entre documentos concurrentes que tocan el mismo producto.
type Applier struct {
	log *logger.Logger
}

// NewApplier construye el aplicador de stock.
func NewApplier(log *logger.Logger) *Applier {
	return &Applier{log: log}
}

// ApplyCreate efecto de creación: stock += signo * cantidad por cada nombre.
func (a *Applier) ApplyCreate(products repository.ProductRepository, kind stock.Kind, lines []entity.LineItem) error {
	for name, qty := range stock.SumByName(lines) {
		if err := a.apply(products, kind, name, qty); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDeltas efecto de actualización: stock += signo * delta por cada par
// (nombre, delta) calculado por stock.Diff sobre las líneas antiguas.
func (a *Applier) ApplyDeltas(products repository.ProductRepository, kind stock.Kind, deltas map[string]decimal.Decimal) error {
	for name, delta := range deltas {
		if err := a.apply(products, kind, name, delta); err != nil {
			return err
		}
	}
	return nil
}

// ApplyReverse efecto de eliminación: el inverso exacto del efecto de
// creación sobre las líneas vigentes del documento.
func (a *Applier) ApplyReverse(products repository.ProductRepository, kind stock.Kind, lines []entity.LineItem) error {
	for name, qty := range stock.SumByName(lines) {
		if err := a.apply(products, kind, name, qty.Neg()); err != nil {
			return err
		}
	}
	return nil
}

func (a *Applier) apply(products repository.ProductRepository, kind stock.Kind, name string, qty decimal.Decimal) error {
	if qty.IsZero() {
		return nil
	}

	p, err := products.GetByNameForUpdate(name)
	if err != nil {
		return err
	}
	if p == nil {
		// Mejor esfuerzo deliberado: si el producto no existe al aplicar
		// (no debería ocurrir, el catálogo se resuelve antes), el ajuste se
		// omite y se registra en vez de abortar la transacción.
		a.log.Warn().
			Str("producto", name).
			Str("tipo", string(kind)).
			Str("cantidad", qty.String()).
			Msg("producto inexistente al aplicar stock; ajuste omitido")
		return nil
	}

	signed := qty.Mul(decimal.NewFromInt(kind.Sign()))
	newStock := p.Stock.Add(signed)
	if kind.StockPolicy() == stock.ClampToZero && signed.IsNegative() && newStock.IsNegative() {
		newStock = decimal.Zero
	}
	return products.UpdateStock(p.ID, newStock)
}

package stock

import (
	"github.com/shopspring/decimal"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// SumByName acumula las cantidades de un conjunto de líneas por clave de
// nombre normalizada. Un nombre puede aparecer varias veces en un documento;
// sus cantidades se suman.
func SumByName(lines []entity.LineItem) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		k := Key(l.Name)
		sums[k] = sums[k].Add(l.Quantity)
	}
	return sums
}

// Diff calcula, para la unión de nombres de ambos conjuntos, la diferencia
// firmada newSum - oldSum por clave de nombre. Es la única fuente de verdad
// del ajuste de stock en una actualización y debe calcularse ANTES de
// sobrescribir las líneas guardadas del documento.
func Diff(oldLines, newLines []entity.LineItem) map[string]decimal.Decimal {
	oldSums := SumByName(oldLines)
	newSums := SumByName(newLines)

	deltas := make(map[string]decimal.Decimal, len(oldSums)+len(newSums))
	for k, oldQ := range oldSums {
		deltas[k] = newSums[k].Sub(oldQ)
	}
	for k, newQ := range newSums {
		if _, seen := oldSums[k]; !seen {
			deltas[k] = newQ
		}
	}
	return deltas
}

package entity

import "github.com/shopspring/decimal"

// LineItem es una línea de un documento de movimiento: nombre libre de
// producto, cantidad (puede ser fraccional) y unidad (texto libre).
// No tiene identidad propia: en una actualización el conjunto completo
// de líneas se reemplaza, nunca se edita línea por línea.
type LineItem struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryDefault categoría asignada a productos creados implícitamente
// por el motor de stock cuando un documento referencia un nombre desconocido.
const CategoryDefault = "Otros"

// Product representa un producto del inventario. Stock es el contador único
// autoritativo por producto: suma de todos los deltas firmados aplicados por
// los documentos de movimiento (despachos, recepciones, producciones, notas
// de crédito y consumos internos).
type Product struct {
	ID        string
	Name      string // único tras normalización (mayúsculas/minúsculas y espacios)
	Category  string
	Stock     decimal.Decimal
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// ReceiptStatusPending estado inicial de una recepción. El resto de los
// estados es texto libre del caller, sin máquina de estados.
const ReceiptStatusPending = "pendiente"

// Receipt recepción de mercadería desde un proveedor (entrada de stock).
type Receipt struct {
	ID         string
	Order      string
	SupplierID string
	Date       time.Time
	Status     string // libre, sin máquina de estados (a diferencia de Dispatch)
	CreatedBy  string
	Lines      []LineItem
}

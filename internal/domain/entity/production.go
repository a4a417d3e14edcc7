package entity

import "time"

// Production corrida de producción registrada por un operario
// (entrada de stock del producto terminado).
type Production struct {
	ID         string
	OperatorID string
	Date       time.Time
	CreatedBy  string
	Lines      []LineItem
}

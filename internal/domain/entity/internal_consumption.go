package entity

import "time"

// InternalConsumption retiro de mercadería para uso interno
// (salida de stock sin cliente).
type InternalConsumption struct {
	ID          string
	WithdrawnBy string // nombre de quien retira
	Area        string
	Reason      string
	Date        time.Time
	CreatedBy   string
	Lines       []LineItem
}

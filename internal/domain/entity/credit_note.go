package entity

import "time"

// CreditNote nota de crédito por mercadería devuelta que reingresa al
// inventario (entrada de stock).
type CreditNote struct {
	ID               string
	ClientID         string
	OrderNumber      string
	InvoiceNumber    string
	CreditNoteNumber string
	Reason           string
	Date             time.Time
	CreatedBy        string
	Lines            []LineItem
}

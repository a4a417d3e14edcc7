package repository

import (
	"time"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// CreditNoteFilter filtros de listado de notas de crédito.
type CreditNoteFilter struct {
	Client           string
	OrderNumber      string
	InvoiceNumber    string
	CreditNoteNumber string
	Reason           string
	Creator          string
	From             time.Time
	To               time.Time
	Limit            int
	Offset           int
}

// CreditNoteRepository puerto de persistencia para notas de crédito y sus líneas.
type CreditNoteRepository interface {
	Create(cn *entity.CreditNote) error
	GetByID(id string) (*entity.CreditNote, error)
	Update(cn *entity.CreditNote) error
	ReplaceLines(creditNoteID string, lines []entity.LineItem) error
	Delete(id string) error
	List(f CreditNoteFilter) ([]*entity.CreditNote, error)
	CountByClient(clientID string) (int, error)
}

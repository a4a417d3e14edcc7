package repository

import (
	"time"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// ReceiptFilter filtros de listado de recepciones.
type ReceiptFilter struct {
	Supplier string
	Order    string
	Creator  string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// ReceiptRepository puerto de persistencia para recepciones y sus líneas.
type ReceiptRepository interface {
	Create(r *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	GetByOrder(order string) (*entity.Receipt, error)
	Update(r *entity.Receipt) error
	ReplaceLines(receiptID string, lines []entity.LineItem) error
	Delete(id string) error
	List(f ReceiptFilter) ([]*entity.Receipt, error)
	CountBySupplier(supplierID string) (int, error)
}

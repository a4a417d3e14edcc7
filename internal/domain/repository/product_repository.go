package repository

import (
	"github.com/shopspring/decimal"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las búsquedas por nombre son insensibles a mayúsculas sobre el nombre
// normalizado; devuelven nil sin error cuando no hay coincidencia.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetByNameForUpdate bloquea la fila para update (SELECT FOR UPDATE);
	// usado por el motor de stock dentro de transacciones.
	GetByNameForUpdate(name string) (*entity.Product, error)
	UpdateStock(id string, stock decimal.Decimal) error
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}

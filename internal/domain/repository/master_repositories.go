package repository

import "github.com/bodegacl/bodega-api/internal/domain/entity"

// Puertos de persistencia para maestros (clientes, choferes, proveedores,
// operarios). GetByName compara sobre el nombre normalizado, insensible a
// mayúsculas, y devuelve nil sin error cuando no hay coincidencia.

type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByName(name string) (*entity.Client, error)
	Update(c *entity.Client) error
	List() ([]*entity.Client, error)
	Delete(id string) error
}

type DriverRepository interface {
	Create(d *entity.Driver) error
	GetByID(id string) (*entity.Driver, error)
	Update(d *entity.Driver) error
	List() ([]*entity.Driver, error)
	Delete(id string) error
}

type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	Delete(id string) error
}

type OperatorRepository interface {
	Create(o *entity.Operator) error
	GetByID(id string) (*entity.Operator, error)
	GetByName(name string) (*entity.Operator, error)
	Update(o *entity.Operator) error
	List() ([]*entity.Operator, error)
	Delete(id string) error
}

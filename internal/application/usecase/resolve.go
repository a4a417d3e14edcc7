package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
	"github.com/bodegacl/bodega-api/pkg/timezone"
)

// Resolución por nombre normalizado de los maestros que se crean
// implícitamente al referenciarlos desde un documento (clientes,
// proveedores, operarios). Los choferes se referencian por ID y no se
// crean implícitamente.

func resolveClient(clients repository.ClientRepository, rawName, createdBy string) (*entity.Client, error) {
	name := stock.Normalize(rawName)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de cliente vacío", domain.ErrInvalidInput)
	}
	c, err := clients.GetByName(name)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	c = &entity.Client{ID: uuid.New().String(), Name: name, CreatedBy: createdBy, CreatedAt: time.Now().UTC()}
	if err := clients.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func resolveSupplier(suppliers repository.SupplierRepository, rawName, createdBy string) (*entity.Supplier, error) {
	name := stock.Normalize(rawName)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de proveedor vacío", domain.ErrInvalidInput)
	}
	s, err := suppliers.GetByName(name)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	s = &entity.Supplier{ID: uuid.New().String(), Name: name, CreatedBy: createdBy, CreatedAt: time.Now().UTC()}
	if err := suppliers.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

func resolveOperator(operators repository.OperatorRepository, rawName, createdBy string) (*entity.Operator, error) {
	name := stock.Normalize(rawName)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de operario vacío", domain.ErrInvalidInput)
	}
	o, err := operators.GetByName(name)
	if err != nil {
		return nil, err
	}
	if o != nil {
		return o, nil
	}
	o = &entity.Operator{ID: uuid.New().String(), Name: name, CreatedBy: createdBy, CreatedAt: time.Now().UTC()}
	if err := operators.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

// clientName nombre del cliente o su ID si el registro ya no existe.
func clientName(clients repository.ClientRepository, id string) string {
	if id == "" {
		return ""
	}
	c, err := clients.GetByID(id)
	if err != nil || c == nil {
		return id
	}
	return c.Name
}

func driverName(drivers repository.DriverRepository, id string) string {
	d, err := drivers.GetByID(id)
	if err != nil || d == nil {
		return id
	}
	return d.Name
}

func supplierName(suppliers repository.SupplierRepository, id string) string {
	s, err := suppliers.GetByID(id)
	if err != nil || s == nil {
		return id
	}
	return s.Name
}

func operatorName(operators repository.OperatorRepository, id string) string {
	o, err := operators.GetByID(id)
	if err != nil || o == nil {
		return id
	}
	return o.Name
}

func formatDate(t time.Time) string {
	return timezone.FormatLocal(t)
}

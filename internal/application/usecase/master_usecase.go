package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
	"github.com/bodegacl/bodega-api/pkg/logger"
)

// MasterUseCase CRUD de los maestros referenciados por los documentos:
// clientes, choferes, proveedores y operarios. El borrado está protegido:
// un maestro referenciado por algún documento no se puede eliminar.
type MasterUseCase struct {
	tx  stockengine.TxRunner
	log *logger.Logger
}

// NewMasterUseCase construye el caso de uso.
func NewMasterUseCase(tx stockengine.TxRunner, log *logger.Logger) *MasterUseCase {
	return &MasterUseCase{tx: tx, log: log}
}

func masterName(raw string) (string, error) {
	name := stock.Normalize(raw)
	if name == "" {
		return "", fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}
	return name, nil
}

// --- Clientes ---

func (uc *MasterUseCase) CreateClient(ctx context.Context, userID string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		existing, err := r.Clients.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: cliente %q", domain.ErrDuplicate, name)
		}
		c := &entity.Client{ID: uuid.New().String(), Name: name, CreatedBy: userID, CreatedAt: time.Now().UTC()}
		if err := r.Clients.Create(c); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: c.ID, Name: c.Name, CreatedBy: c.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) UpdateClient(ctx context.Context, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		c, err := r.Clients.GetByID(id)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
		}
		c.Name = name
		if err := r.Clients.Update(c); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: c.ID, Name: c.Name, CreatedBy: c.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) ListClients(ctx context.Context) ([]*dto.MasterResponse, error) {
	var out []*dto.MasterResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Clients.List()
		if err != nil {
			return err
		}
		out = make([]*dto.MasterResponse, 0, len(list))
		for _, c := range list {
			out = append(out, &dto.MasterResponse{ID: c.ID, Name: c.Name, CreatedBy: c.CreatedBy})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteClient elimina un cliente sin despachos ni notas de crédito asociados.
func (uc *MasterUseCase) DeleteClient(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		c, err := r.Clients.GetByID(id)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
		}
		dispatches, err := r.Dispatches.CountByClient(id)
		if err != nil {
			return err
		}
		creditNotes, err := r.CreditNotes.CountByClient(id)
		if err != nil {
			return err
		}
		if dispatches+creditNotes > 0 {
			return fmt.Errorf("%w: cliente con %d documentos asociados", domain.ErrReferenced, dispatches+creditNotes)
		}
		return r.Clients.Delete(id)
	})
}

// --- Choferes ---

func (uc *MasterUseCase) CreateDriver(ctx context.Context, userID string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		d := &entity.Driver{ID: uuid.New().String(), Name: name, CreatedBy: userID, CreatedAt: time.Now().UTC()}
		if err := r.Drivers.Create(d); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: d.ID, Name: d.Name, CreatedBy: d.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) UpdateDriver(ctx context.Context, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		d, err := r.Drivers.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: chofer %s", domain.ErrNotFound, id)
		}
		d.Name = name
		if err := r.Drivers.Update(d); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: d.ID, Name: d.Name, CreatedBy: d.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) ListDrivers(ctx context.Context) ([]*dto.MasterResponse, error) {
	var out []*dto.MasterResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Drivers.List()
		if err != nil {
			return err
		}
		out = make([]*dto.MasterResponse, 0, len(list))
		for _, d := range list {
			out = append(out, &dto.MasterResponse{ID: d.ID, Name: d.Name, CreatedBy: d.CreatedBy})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteDriver elimina un chofer sin despachos asociados.
func (uc *MasterUseCase) DeleteDriver(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		d, err := r.Drivers.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: chofer %s", domain.ErrNotFound, id)
		}
		n, err := r.Dispatches.CountByDriver(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: chofer con %d despachos asociados", domain.ErrReferenced, n)
		}
		return r.Drivers.Delete(id)
	})
}

// --- Proveedores ---

func (uc *MasterUseCase) CreateSupplier(ctx context.Context, userID string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		existing, err := r.Suppliers.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: proveedor %q", domain.ErrDuplicate, name)
		}
		s := &entity.Supplier{ID: uuid.New().String(), Name: name, CreatedBy: userID, CreatedAt: time.Now().UTC()}
		if err := r.Suppliers.Create(s); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: s.ID, Name: s.Name, CreatedBy: s.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) UpdateSupplier(ctx context.Context, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		s, err := r.Suppliers.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
		}
		s.Name = name
		if err := r.Suppliers.Update(s); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: s.ID, Name: s.Name, CreatedBy: s.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) ListSuppliers(ctx context.Context) ([]*dto.MasterResponse, error) {
	var out []*dto.MasterResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Suppliers.List()
		if err != nil {
			return err
		}
		out = make([]*dto.MasterResponse, 0, len(list))
		for _, s := range list {
			out = append(out, &dto.MasterResponse{ID: s.ID, Name: s.Name, CreatedBy: s.CreatedBy})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSupplier elimina un proveedor sin recepciones asociadas.
func (uc *MasterUseCase) DeleteSupplier(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		s, err := r.Suppliers.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
		}
		n, err := r.Receipts.CountBySupplier(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: proveedor con %d recepciones asociadas", domain.ErrReferenced, n)
		}
		return r.Suppliers.Delete(id)
	})
}

// --- Operarios ---

func (uc *MasterUseCase) CreateOperator(ctx context.Context, userID string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		existing, err := r.Operators.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: operario %q", domain.ErrDuplicate, name)
		}
		o := &entity.Operator{ID: uuid.New().String(), Name: name, CreatedBy: userID, CreatedAt: time.Now().UTC()}
		if err := r.Operators.Create(o); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: o.ID, Name: o.Name, CreatedBy: o.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) UpdateOperator(ctx context.Context, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := masterName(in.Name)
	if err != nil {
		return nil, err
	}
	var resp *dto.MasterResponse
	err = uc.tx.Run(ctx, func(r stockengine.Repos) error {
		o, err := r.Operators.GetByID(id)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("%w: operario %s", domain.ErrNotFound, id)
		}
		o.Name = name
		if err := r.Operators.Update(o); err != nil {
			return err
		}
		resp = &dto.MasterResponse{ID: o.ID, Name: o.Name, CreatedBy: o.CreatedBy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *MasterUseCase) ListOperators(ctx context.Context) ([]*dto.MasterResponse, error) {
	var out []*dto.MasterResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Operators.List()
		if err != nil {
			return err
		}
		out = make([]*dto.MasterResponse, 0, len(list))
		for _, o := range list {
			out = append(out, &dto.MasterResponse{ID: o.ID, Name: o.Name, CreatedBy: o.CreatedBy})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOperator elimina un operario sin producciones asociadas.
func (uc *MasterUseCase) DeleteOperator(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		o, err := r.Operators.GetByID(id)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("%w: operario %s", domain.ErrNotFound, id)
		}
		n, err := r.Productions.CountByOperator(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: operario con %d producciones asociadas", domain.ErrReferenced, n)
		}
		return r.Operators.Delete(id)
	})
}

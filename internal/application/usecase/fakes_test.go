package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
)

// Repositorios en memoria para los tests de casos de uso. Replican el
// contrato de los repositorios Postgres: búsquedas por nombre normalizado
// insensibles a mayúsculas y nil sin error cuando no hay coincidencia.

type fakeStore struct {
	products     map[string]*entity.Product
	dispatches   map[string]*entity.Dispatch
	receipts     map[string]*entity.Receipt
	productions  map[string]*entity.Production
	creditNotes  map[string]*entity.CreditNote
	consumptions map[string]*entity.InternalConsumption
	clients      map[string]*entity.Client
	drivers      map[string]*entity.Driver
	suppliers    map[string]*entity.Supplier
	operators    map[string]*entity.Operator
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:     map[string]*entity.Product{},
		dispatches:   map[string]*entity.Dispatch{},
		receipts:     map[string]*entity.Receipt{},
		productions:  map[string]*entity.Production{},
		creditNotes:  map[string]*entity.CreditNote{},
		consumptions: map[string]*entity.InternalConsumption{},
		clients:      map[string]*entity.Client{},
		drivers:      map[string]*entity.Driver{},
		suppliers:    map[string]*entity.Supplier{},
		operators:    map[string]*entity.Operator{},
	}
}

func (s *fakeStore) seedProduct(name string, qty int64) *entity.Product {
	p := &entity.Product{
		ID:       uuid.New().String(),
		Name:     stock.Normalize(name),
		Category: entity.CategoryDefault,
		Stock:    decimal.NewFromInt(qty),
	}
	s.products[p.ID] = p
	return p
}

func (s *fakeStore) seedDriver(name string) *entity.Driver {
	d := &entity.Driver{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	s.drivers[d.ID] = d
	return d
}

func (s *fakeStore) stockOf(name string) decimal.Decimal {
	for _, p := range s.products {
		if stock.Key(p.Name) == stock.Key(name) {
			return p.Stock
		}
	}
	return decimal.Zero
}

// fakeTx corre fn directo sobre el store; los tests de caso de uso no
// ejercitan rollback, solo la semántica de stock.
type fakeTx struct{ store *fakeStore }

var _ stockengine.TxRunner = (*fakeTx)(nil)

func (t *fakeTx) Run(_ context.Context, fn func(r stockengine.Repos) error) error {
	s := t.store
	return fn(stockengine.Repos{
		Products:     &fakeProducts{s},
		Dispatches:   &fakeDispatches{s},
		Receipts:     &fakeReceipts{s},
		Productions:  &fakeProductions{s},
		CreditNotes:  &fakeCreditNotes{s},
		Consumptions: &fakeConsumptions{s},
		Clients:      &fakeClients{s},
		Drivers:      &fakeDrivers{s},
		Suppliers:    &fakeSuppliers{s},
		Operators:    &fakeOperators{s},
	})
}

// --- Productos ---

type fakeProducts struct{ s *fakeStore }

var _ repository.ProductRepository = (*fakeProducts)(nil)

func (f *fakeProducts) Create(p *entity.Product) error {
	cp := *p
	f.s.products[p.ID] = &cp
	return nil
}

func (f *fakeProducts) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.s.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProducts) GetByName(name string) (*entity.Product, error) {
	for _, p := range f.s.products {
		if stock.Key(p.Name) == stock.Key(name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) GetByNameForUpdate(name string) (*entity.Product, error) {
	return f.GetByName(name)
}

func (f *fakeProducts) UpdateStock(id string, st decimal.Decimal) error {
	if p, ok := f.s.products[id]; ok {
		p.Stock = st
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeProducts) Update(p *entity.Product) error {
	cp := *p
	f.s.products[p.ID] = &cp
	return nil
}

func (f *fakeProducts) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.s.products))
	for _, p := range f.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProducts) Delete(id string) error {
	delete(f.s.products, id)
	return nil
}

// --- Despachos ---

type fakeDispatches struct{ s *fakeStore }

var _ repository.DispatchRepository = (*fakeDispatches)(nil)

func (f *fakeDispatches) Create(d *entity.Dispatch) error {
	cp := *d
	cp.Lines = append([]entity.LineItem(nil), d.Lines...)
	f.s.dispatches[d.ID] = &cp
	return nil
}

func (f *fakeDispatches) GetByID(id string) (*entity.Dispatch, error) {
	if d, ok := f.s.dispatches[id]; ok {
		cp := *d
		cp.Lines = append([]entity.LineItem(nil), d.Lines...)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDispatches) GetByOrder(order string) (*entity.Dispatch, error) {
	for _, d := range f.s.dispatches {
		if d.Order == order {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDispatches) Update(d *entity.Dispatch) error {
	stored, ok := f.s.dispatches[d.ID]
	if !ok {
		return nil
	}
	lines := stored.Lines
	cp := *d
	cp.Lines = lines
	f.s.dispatches[d.ID] = &cp
	return nil
}

func (f *fakeDispatches) ReplaceLines(id string, lines []entity.LineItem) error {
	if d, ok := f.s.dispatches[id]; ok {
		d.Lines = append([]entity.LineItem(nil), lines...)
	}
	return nil
}

func (f *fakeDispatches) Delete(id string) error {
	delete(f.s.dispatches, id)
	return nil
}

func (f *fakeDispatches) List(repository.DispatchFilter) ([]*entity.Dispatch, error) {
	out := make([]*entity.Dispatch, 0, len(f.s.dispatches))
	for _, d := range f.s.dispatches {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeDispatches) DatesByCreatorSince(createdBy string, since time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, d := range f.s.dispatches {
		if d.CreatedBy == createdBy && !d.Date.Before(since) {
			out = append(out, d.Date)
		}
	}
	return out, nil
}

func (f *fakeDispatches) CountByDriver(driverID string) (int, error) {
	n := 0
	for _, d := range f.s.dispatches {
		if d.DriverID == driverID {
			n++
		}
	}
	return n, nil
}

func (f *fakeDispatches) CountByClient(clientID string) (int, error) {
	n := 0
	for _, d := range f.s.dispatches {
		if d.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

// --- Recepciones ---

type fakeReceipts struct{ s *fakeStore }

var _ repository.ReceiptRepository = (*fakeReceipts)(nil)

func (f *fakeReceipts) Create(r *entity.Receipt) error {
	cp := *r
	cp.Lines = append([]entity.LineItem(nil), r.Lines...)
	f.s.receipts[r.ID] = &cp
	return nil
}

func (f *fakeReceipts) GetByID(id string) (*entity.Receipt, error) {
	if r, ok := f.s.receipts[id]; ok {
		cp := *r
		cp.Lines = append([]entity.LineItem(nil), r.Lines...)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReceipts) GetByOrder(order string) (*entity.Receipt, error) {
	for _, r := range f.s.receipts {
		if r.Order == order {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReceipts) Update(r *entity.Receipt) error {
	stored, ok := f.s.receipts[r.ID]
	if !ok {
		return nil
	}
	lines := stored.Lines
	cp := *r
	cp.Lines = lines
	f.s.receipts[r.ID] = &cp
	return nil
}

func (f *fakeReceipts) ReplaceLines(id string, lines []entity.LineItem) error {
	if r, ok := f.s.receipts[id]; ok {
		r.Lines = append([]entity.LineItem(nil), lines...)
	}
	return nil
}

func (f *fakeReceipts) Delete(id string) error {
	delete(f.s.receipts, id)
	return nil
}

func (f *fakeReceipts) List(repository.ReceiptFilter) ([]*entity.Receipt, error) {
	out := make([]*entity.Receipt, 0, len(f.s.receipts))
	for _, r := range f.s.receipts {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeReceipts) CountBySupplier(supplierID string) (int, error) {
	n := 0
	for _, r := range f.s.receipts {
		if r.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

// --- Producciones ---

type fakeProductions struct{ s *fakeStore }

var _ repository.ProductionRepository = (*fakeProductions)(nil)

func (f *fakeProductions) Create(p *entity.Production) error {
	cp := *p
	cp.Lines = append([]entity.LineItem(nil), p.Lines...)
	f.s.productions[p.ID] = &cp
	return nil
}

func (f *fakeProductions) GetByID(id string) (*entity.Production, error) {
	if p, ok := f.s.productions[id]; ok {
		cp := *p
		cp.Lines = append([]entity.LineItem(nil), p.Lines...)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductions) Update(p *entity.Production) error {
	stored, ok := f.s.productions[p.ID]
	if !ok {
		return nil
	}
	lines := stored.Lines
	cp := *p
	cp.Lines = lines
	f.s.productions[p.ID] = &cp
	return nil
}

func (f *fakeProductions) ReplaceLines(id string, lines []entity.LineItem) error {
	if p, ok := f.s.productions[id]; ok {
		p.Lines = append([]entity.LineItem(nil), lines...)
	}
	return nil
}

func (f *fakeProductions) Delete(id string) error {
	delete(f.s.productions, id)
	return nil
}

func (f *fakeProductions) List(repository.ProductionFilter) ([]*entity.Production, error) {
	out := make([]*entity.Production, 0, len(f.s.productions))
	for _, p := range f.s.productions {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductions) CountByOperator(operatorID string) (int, error) {
	n := 0
	for _, p := range f.s.productions {
		if p.OperatorID == operatorID {
			n++
		}
	}
	return n, nil
}

// --- Notas de crédito ---

type fakeCreditNotes struct{ s *fakeStore }

var _ repository.CreditNoteRepository = (*fakeCreditNotes)(nil)

func (f *fakeCreditNotes) Create(cn *entity.CreditNote) error {
	cp := *cn
	cp.Lines = append([]entity.LineItem(nil), cn.Lines...)
	f.s.creditNotes[cn.ID] = &cp
	return nil
}

func (f *fakeCreditNotes) GetByID(id string) (*entity.CreditNote, error) {
	if cn, ok := f.s.creditNotes[id]; ok {
		cp := *cn
		cp.Lines = append([]entity.LineItem(nil), cn.Lines...)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCreditNotes) Update(cn *entity.CreditNote) error {
	stored, ok := f.s.creditNotes[cn.ID]
	if !ok {
		return nil
	}
	lines := stored.Lines
	cp := *cn
	cp.Lines = lines
	f.s.creditNotes[cn.ID] = &cp
	return nil
}

func (f *fakeCreditNotes) ReplaceLines(id string, lines []entity.LineItem) error {
	if cn, ok := f.s.creditNotes[id]; ok {
		cn.Lines = append([]entity.LineItem(nil), lines...)
	}
	return nil
}

func (f *fakeCreditNotes) Delete(id string) error {
	delete(f.s.creditNotes, id)
	return nil
}

func (f *fakeCreditNotes) List(repository.CreditNoteFilter) ([]*entity.CreditNote, error) {
	out := make([]*entity.CreditNote, 0, len(f.s.creditNotes))
	for _, cn := range f.s.creditNotes {
		cp := *cn
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCreditNotes) CountByClient(clientID string) (int, error) {
	n := 0
	for _, cn := range f.s.creditNotes {
		if cn.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

// --- Consumos internos ---

type fakeConsumptions struct{ s *fakeStore }

var _ repository.InternalConsumptionRepository = (*fakeConsumptions)(nil)

func (f *fakeConsumptions) Create(c *entity.InternalConsumption) error {
	cp := *c
	cp.Lines = append([]entity.LineItem(nil), c.Lines...)
	f.s.consumptions[c.ID] = &cp
	return nil
}

func (f *fakeConsumptions) GetByID(id string) (*entity.InternalConsumption, error) {
	if c, ok := f.s.consumptions[id]; ok {
		cp := *c
		cp.Lines = append([]entity.LineItem(nil), c.Lines...)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeConsumptions) Update(c *entity.InternalConsumption) error {
	stored, ok := f.s.consumptions[c.ID]
	if !ok {
		return nil
	}
	lines := stored.Lines
	cp := *c
	cp.Lines = lines
	f.s.consumptions[c.ID] = &cp
	return nil
}

func (f *fakeConsumptions) ReplaceLines(id string, lines []entity.LineItem) error {
	if c, ok := f.s.consumptions[id]; ok {
		c.Lines = append([]entity.LineItem(nil), lines...)
	}
	return nil
}

func (f *fakeConsumptions) Delete(id string) error {
	delete(f.s.consumptions, id)
	return nil
}

func (f *fakeConsumptions) List(repository.InternalConsumptionFilter) ([]*entity.InternalConsumption, error) {
	out := make([]*entity.InternalConsumption, 0, len(f.s.consumptions))
	for _, c := range f.s.consumptions {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// --- Maestros ---

type fakeClients struct{ s *fakeStore }

var _ repository.ClientRepository = (*fakeClients)(nil)

func (f *fakeClients) Create(c *entity.Client) error {
	cp := *c
	f.s.clients[c.ID] = &cp
	return nil
}

func (f *fakeClients) GetByID(id string) (*entity.Client, error) {
	if c, ok := f.s.clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeClients) GetByName(name string) (*entity.Client, error) {
	for _, c := range f.s.clients {
		if stock.Key(c.Name) == stock.Key(name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClients) Update(c *entity.Client) error {
	cp := *c
	f.s.clients[c.ID] = &cp
	return nil
}

func (f *fakeClients) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(f.s.clients))
	for _, c := range f.s.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeClients) Delete(id string) error {
	delete(f.s.clients, id)
	return nil
}

type fakeDrivers struct{ s *fakeStore }

var _ repository.DriverRepository = (*fakeDrivers)(nil)

func (f *fakeDrivers) Create(d *entity.Driver) error {
	cp := *d
	f.s.drivers[d.ID] = &cp
	return nil
}

func (f *fakeDrivers) GetByID(id string) (*entity.Driver, error) {
	if d, ok := f.s.drivers[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDrivers) Update(d *entity.Driver) error {
	cp := *d
	f.s.drivers[d.ID] = &cp
	return nil
}

func (f *fakeDrivers) List() ([]*entity.Driver, error) {
	out := make([]*entity.Driver, 0, len(f.s.drivers))
	for _, d := range f.s.drivers {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeDrivers) Delete(id string) error {
	delete(f.s.drivers, id)
	return nil
}

type fakeSuppliers struct{ s *fakeStore }

var _ repository.SupplierRepository = (*fakeSuppliers)(nil)

func (f *fakeSuppliers) Create(sp *entity.Supplier) error {
	cp := *sp
	f.s.suppliers[sp.ID] = &cp
	return nil
}

func (f *fakeSuppliers) GetByID(id string) (*entity.Supplier, error) {
	if sp, ok := f.s.suppliers[id]; ok {
		cp := *sp
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSuppliers) GetByName(name string) (*entity.Supplier, error) {
	for _, sp := range f.s.suppliers {
		if stock.Key(sp.Name) == stock.Key(name) {
			cp := *sp
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSuppliers) Update(sp *entity.Supplier) error {
	cp := *sp
	f.s.suppliers[sp.ID] = &cp
	return nil
}

func (f *fakeSuppliers) List() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(f.s.suppliers))
	for _, sp := range f.s.suppliers {
		cp := *sp
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSuppliers) Delete(id string) error {
	delete(f.s.suppliers, id)
	return nil
}

type fakeOperators struct{ s *fakeStore }

var _ repository.OperatorRepository = (*fakeOperators)(nil)

func (f *fakeOperators) Create(o *entity.Operator) error {
	cp := *o
	f.s.operators[o.ID] = &cp
	return nil
}

func (f *fakeOperators) GetByID(id string) (*entity.Operator, error) {
	if o, ok := f.s.operators[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeOperators) GetByName(name string) (*entity.Operator, error) {
	for _, o := range f.s.operators {
		if stock.Key(o.Name) == stock.Key(name) {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOperators) Update(o *entity.Operator) error {
	cp := *o
	f.s.operators[o.ID] = &cp
	return nil
}

func (f *fakeOperators) List() ([]*entity.Operator, error) {
	out := make([]*entity.Operator, 0, len(f.s.operators))
	for _, o := range f.s.operators {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOperators) Delete(id string) error {
	delete(f.s.operators, id)
	return nil
}

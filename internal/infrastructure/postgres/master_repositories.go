package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
)

// Adaptadores PostgreSQL para los maestros. Las cuatro tablas comparten el
// mismo esquema (id, name, created_by, created_at); los repos son el mismo
// patrón sobre tablas distintas.

var (
	_ repository.ClientRepository   = (*ClientRepo)(nil)
	_ repository.DriverRepository   = (*DriverRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.OperatorRepository = (*OperatorRepo)(nil)
)

func masterCreate(q Querier, table, id, name, createdBy string, createdAt time.Time) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (id, name, created_by, created_at) VALUES ($1, $2, $3, $4)`, table)
	if _, err := q.Exec(context.Background(), query, id, name, createdBy, createdAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func masterUpdate(q Querier, table, id, name string) error {
	query := fmt.Sprintf(`UPDATE %s SET name = $2 WHERE id = $1`, table)
	if _, err := q.Exec(context.Background(), query, id, name); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

func masterDelete(q Querier, table, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)
	if _, err := q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

// --- Clientes ---

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func (r *ClientRepo) Create(c *entity.Client) error {
	return masterCreate(r.q, "clients", c.ID, c.Name, c.CreatedBy, c.CreatedAt)
}

func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetByName busca por nombre normalizado, insensible a mayúsculas.
func (r *ClientRepo) GetByName(name string) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM clients WHERE lower(name) = lower($1)`, name).
		Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by name: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) Update(c *entity.Client) error {
	return masterUpdate(r.q, "clients", c.ID, c.Name)
}

func (r *ClientRepo) List() ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_by, created_at FROM clients ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *ClientRepo) Delete(id string) error {
	return masterDelete(r.q, "clients", id)
}

// --- Choferes ---

// DriverRepo implementación de DriverRepository sobre PostgreSQL.
type DriverRepo struct {
	q Querier
}

// NewDriverRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

func (r *DriverRepo) Create(d *entity.Driver) error {
	return masterCreate(r.q, "drivers", d.ID, d.Name, d.CreatedBy, d.CreatedAt)
}

func (r *DriverRepo) GetByID(id string) (*entity.Driver, error) {
	var d entity.Driver
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM drivers WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.CreatedBy, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}

func (r *DriverRepo) Update(d *entity.Driver) error {
	return masterUpdate(r.q, "drivers", d.ID, d.Name)
}

func (r *DriverRepo) List() ([]*entity.Driver, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_by, created_at FROM drivers ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Driver
	for rows.Next() {
		var d entity.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *DriverRepo) Delete(id string) error {
	return masterDelete(r.q, "drivers", id)
}

// --- Proveedores ---

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	return masterCreate(r.q, "suppliers", s.ID, s.Name, s.CreatedBy, s.CreatedAt)
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// GetByName busca por nombre normalizado, insensible a mayúsculas.
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM suppliers WHERE lower(name) = lower($1)`, name).
		Scan(&s.ID, &s.Name, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by name: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) Update(s *entity.Supplier) error {
	return masterUpdate(r.q, "suppliers", s.ID, s.Name)
}

func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_by, created_at FROM suppliers ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SupplierRepo) Delete(id string) error {
	return masterDelete(r.q, "suppliers", id)
}

// --- Operarios ---

// OperatorRepo implementación de OperatorRepository sobre PostgreSQL.
type OperatorRepo struct {
	q Querier
}

// NewOperatorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

func (r *OperatorRepo) Create(o *entity.Operator) error {
	return masterCreate(r.q, "operators", o.ID, o.Name, o.CreatedBy, o.CreatedAt)
}

func (r *OperatorRepo) GetByID(id string) (*entity.Operator, error) {
	var o entity.Operator
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM operators WHERE id = $1`, id).
		Scan(&o.ID, &o.Name, &o.CreatedBy, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return &o, nil
}

// GetByName busca por nombre normalizado, insensible a mayúsculas.
func (r *OperatorRepo) GetByName(name string) (*entity.Operator, error) {
	var o entity.Operator
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM operators WHERE lower(name) = lower($1)`, name).
		Scan(&o.ID, &o.Name, &o.CreatedBy, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator by name: %w", err)
	}
	return &o, nil
}

func (r *OperatorRepo) Update(o *entity.Operator) error {
	return masterUpdate(r.q, "operators", o.ID, o.Name)
}

func (r *OperatorRepo) List() ([]*entity.Operator, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_by, created_at FROM operators ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()

	var out []*entity.Operator
	for rows.Next() {
		var o entity.Operator
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

func (r *OperatorRepo) Delete(id string) error {
	return masterDelete(r.q, "operators", id)
}

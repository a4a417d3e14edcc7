package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
)

var _ repository.DispatchRepository = (*DispatchRepo)(nil)

// DispatchRepo implementación de DispatchRepository sobre PostgreSQL
// (usable con pool o tx).
type DispatchRepo struct {
	q Querier
}

// NewDispatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDispatchRepository(q Querier) *DispatchRepo {
	return &DispatchRepo{q: q}
}

const dispatchColumns = `id, order_number, client_id, driver_id, package_number, invoice_number,
	date, status, delivered_driver, delivered_driver_at, delivered_client, delivered_client_at, created_by`

func scanDispatch(row pgx.Row) (*entity.Dispatch, error) {
	var d entity.Dispatch
	err := row.Scan(&d.ID, &d.Order, &d.ClientID, &d.DriverID, &d.PackageNumber, &d.InvoiceNumber,
		&d.Date, &d.Status, &d.DeliveredDriver, &d.DeliveredDriverAt, &d.DeliveredClient,
		&d.DeliveredClientAt, &d.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// Create inserta el despacho con sus líneas.
func (r *DispatchRepo) Create(d *entity.Dispatch) error {
	query := `
		INSERT INTO dispatches (id, order_number, client_id, driver_id, package_number, invoice_number,
			date, status, delivered_driver, delivered_driver_at, delivered_client, delivered_client_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Order, d.ClientID, d.DriverID, d.PackageNumber, d.InvoiceNumber,
		d.Date, d.Status, d.DeliveredDriver, d.DeliveredDriverAt, d.DeliveredClient,
		d.DeliveredClientAt, d.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return insertLines(r.q, "dispatch_lines", "dispatch_id", d.ID, d.Lines)
}

// GetByID obtiene un despacho con sus líneas.
func (r *DispatchRepo) GetByID(id string) (*entity.Dispatch, error) {
	d, err := scanDispatch(r.q.QueryRow(context.Background(),
		`SELECT `+dispatchColumns+` FROM dispatches WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	if d == nil {
		return nil, nil
	}
	if d.Lines, err = loadLines(r.q, "dispatch_lines", "dispatch_id", d.ID); err != nil {
		return nil, err
	}
	return d, nil
}

// GetByOrder busca por número de orden (guarda de duplicados). Si hay más de
// uno por force, devuelve el más reciente.
func (r *DispatchRepo) GetByOrder(order string) (*entity.Dispatch, error) {
	d, err := scanDispatch(r.q.QueryRow(context.Background(),
		`SELECT `+dispatchColumns+` FROM dispatches WHERE order_number = $1 ORDER BY date DESC LIMIT 1`, order))
	if err != nil {
		return nil, fmt.Errorf("get dispatch by order: %w", err)
	}
	return d, nil
}

// Update actualiza la cabecera del despacho. Las líneas van por ReplaceLines.
func (r *DispatchRepo) Update(d *entity.Dispatch) error {
	query := `
		UPDATE dispatches SET order_number = $2, client_id = $3, driver_id = $4, package_number = $5,
			invoice_number = $6, date = $7, status = $8, delivered_driver = $9, delivered_driver_at = $10,
			delivered_client = $11, delivered_client_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Order, d.ClientID, d.DriverID, d.PackageNumber, d.InvoiceNumber,
		d.Date, d.Status, d.DeliveredDriver, d.DeliveredDriverAt, d.DeliveredClient, d.DeliveredClientAt)
	if err != nil {
		return fmt.Errorf("update dispatch: %w", err)
	}
	return nil
}

// ReplaceLines reemplaza el conjunto completo de líneas.
func (r *DispatchRepo) ReplaceLines(dispatchID string, lines []entity.LineItem) error {
	return replaceLines(r.q, "dispatch_lines", "dispatch_id", dispatchID, lines)
}

// Delete elimina el despacho y sus líneas.
func (r *DispatchRepo) Delete(id string) error {
	if err := deleteLines(r.q, "dispatch_lines", "dispatch_id", id); err != nil {
		return err
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM dispatches WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete dispatch: %w", err)
	}
	return nil
}

// List lista despachos filtrados, más recientes primero.
func (r *DispatchRepo) List(f repository.DispatchFilter) ([]*entity.Dispatch, error) {
	query := `
		SELECT ` + dispatchColumns + `
		FROM dispatches d
		WHERE ($1 = '' OR client_id IN (SELECT id FROM clients WHERE name ILIKE '%' || $1 || '%'))
		  AND ($2 = '' OR order_number ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR driver_id IN (SELECT id FROM drivers WHERE name ILIKE '%' || $3 || '%'))
		  AND ($4 = '' OR created_by = $4)
		  AND ($5 = '' OR invoice_number ILIKE '%' || $5 || '%')
		  AND ($6::timestamptz IS NULL OR date >= $6)
		  AND ($7::timestamptz IS NULL OR date < $7)
		ORDER BY date DESC
		LIMIT $8 OFFSET $9`
	rows, err := r.q.Query(context.Background(), query,
		f.Client, f.Order, f.Driver, f.Creator, f.Invoice,
		nullTime(f.From), nullTime(f.To), pageLimit(f.Limit), f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	defer rows.Close()

	var out []*entity.Dispatch
	for rows.Next() {
		var d entity.Dispatch
		if err := rows.Scan(&d.ID, &d.Order, &d.ClientID, &d.DriverID, &d.PackageNumber, &d.InvoiceNumber,
			&d.Date, &d.Status, &d.DeliveredDriver, &d.DeliveredDriverAt, &d.DeliveredClient,
			&d.DeliveredClientAt, &d.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range out {
		if d.Lines, err = loadLines(r.q, "dispatch_lines", "dispatch_id", d.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DatesByCreatorSince fechas de despachos del usuario desde un instante.
func (r *DispatchRepo) DatesByCreatorSince(createdBy string, since time.Time) ([]time.Time, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT date FROM dispatches WHERE created_by = $1 AND date >= $2`, createdBy, since)
	if err != nil {
		return nil, fmt.Errorf("dispatch dates: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan dispatch date: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountByDriver cuenta despachos del chofer (guarda referencial de borrado).
func (r *DispatchRepo) CountByDriver(driverID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM dispatches WHERE driver_id = $1`, driverID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count dispatches by driver: %w", err)
	}
	return n, nil
}

// CountByClient cuenta despachos del cliente (guarda referencial de borrado).
func (r *DispatchRepo) CountByClient(clientID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM dispatches WHERE client_id = $1`, clientID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count dispatches by client: %w", err)
	}
	return n, nil
}

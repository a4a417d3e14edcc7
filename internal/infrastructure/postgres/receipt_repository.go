package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL
// (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptColumns = `id, order_number, supplier_id, date, status, created_by`

func scanReceipt(row pgx.Row) (*entity.Receipt, error) {
	var rec entity.Receipt
	err := row.Scan(&rec.ID, &rec.Order, &rec.SupplierID, &rec.Date, &rec.Status, &rec.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Create inserta la recepción con sus líneas.
func (r *ReceiptRepo) Create(rec *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, order_number, supplier_id, date, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Order, rec.SupplierID, rec.Date, rec.Status, rec.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return insertLines(r.q, "receipt_lines", "receipt_id", rec.ID, rec.Lines)
}

// GetByID obtiene una recepción con sus líneas.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	rec, err := scanReceipt(r.q.QueryRow(context.Background(),
		`SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	if rec.Lines, err = loadLines(r.q, "receipt_lines", "receipt_id", rec.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByOrder busca por número de orden (guarda de duplicados).
func (r *ReceiptRepo) GetByOrder(order string) (*entity.Receipt, error) {
	rec, err := scanReceipt(r.q.QueryRow(context.Background(),
		`SELECT `+receiptColumns+` FROM receipts WHERE order_number = $1 ORDER BY date DESC LIMIT 1`, order))
	if err != nil {
		return nil, fmt.Errorf("get receipt by order: %w", err)
	}
	return rec, nil
}

// Update actualiza la cabecera. Las líneas van por ReplaceLines.
func (r *ReceiptRepo) Update(rec *entity.Receipt) error {
	query := `
		UPDATE receipts SET order_number = $2, supplier_id = $3, date = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Order, rec.SupplierID, rec.Date, rec.Status)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	return nil
}

// ReplaceLines reemplaza el conjunto completo de líneas.
func (r *ReceiptRepo) ReplaceLines(receiptID string, lines []entity.LineItem) error {
	return replaceLines(r.q, "receipt_lines", "receipt_id", receiptID, lines)
}

// Delete elimina la recepción y sus líneas.
func (r *ReceiptRepo) Delete(id string) error {
	if err := deleteLines(r.q, "receipt_lines", "receipt_id", id); err != nil {
		return err
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM receipts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

// List lista recepciones filtradas, más recientes primero.
func (r *ReceiptRepo) List(f repository.ReceiptFilter) ([]*entity.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE ($1 = '' OR supplier_id IN (SELECT id FROM suppliers WHERE name ILIKE '%' || $1 || '%'))
		  AND ($2 = '' OR order_number ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR created_by = $3)
		  AND ($4::timestamptz IS NULL OR date >= $4)
		  AND ($5::timestamptz IS NULL OR date < $5)
		ORDER BY date DESC
		LIMIT $6 OFFSET $7`
	rows, err := r.q.Query(context.Background(), query,
		f.Supplier, f.Order, f.Creator, nullTime(f.From), nullTime(f.To), pageLimit(f.Limit), f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.Order, &rec.SupplierID, &rec.Date, &rec.Status, &rec.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range out {
		if rec.Lines, err = loadLines(r.q, "receipt_lines", "receipt_id", rec.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CountBySupplier cuenta recepciones del proveedor (guarda referencial).
func (r *ReceiptRepo) CountBySupplier(supplierID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM receipts WHERE supplier_id = $1`, supplierID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count receipts by supplier: %w", err)
	}
	return n, nil
}

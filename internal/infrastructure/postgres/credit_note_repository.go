package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
)

var _ repository.CreditNoteRepository = (*CreditNoteRepo)(nil)

// CreditNoteRepo implementación de CreditNoteRepository sobre PostgreSQL
// (usable con pool o tx).
type CreditNoteRepo struct {
	q Querier
}

// NewCreditNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditNoteRepository(q Querier) *CreditNoteRepo {
	return &CreditNoteRepo{q: q}
}

const creditNoteColumns = `id, client_id, order_number, invoice_number, credit_note_number, reason, date, created_by`

func scanCreditNote(row pgx.Row) (*entity.CreditNote, error) {
	var cn entity.CreditNote
	err := row.Scan(&cn.ID, &cn.ClientID, &cn.OrderNumber, &cn.InvoiceNumber,
		&cn.CreditNoteNumber, &cn.Reason, &cn.Date, &cn.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cn, nil
}

// Create inserta la nota de crédito con sus líneas.
func (r *CreditNoteRepo) Create(cn *entity.CreditNote) error {
	query := `
		INSERT INTO credit_notes (id, client_id, order_number, invoice_number, credit_note_number, reason, date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cn.ID, cn.ClientID, cn.OrderNumber, cn.InvoiceNumber, cn.CreditNoteNumber,
		cn.Reason, cn.Date, cn.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert credit note: %w", err)
	}
	return insertLines(r.q, "credit_note_lines", "credit_note_id", cn.ID, cn.Lines)
}

// GetByID obtiene una nota de crédito con sus líneas.
func (r *CreditNoteRepo) GetByID(id string) (*entity.CreditNote, error) {
	cn, err := scanCreditNote(r.q.QueryRow(context.Background(),
		`SELECT `+creditNoteColumns+` FROM credit_notes WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get credit note: %w", err)
	}
	if cn == nil {
		return nil, nil
	}
	if cn.Lines, err = loadLines(r.q, "credit_note_lines", "credit_note_id", cn.ID); err != nil {
		return nil, err
	}
	return cn, nil
}

// Update actualiza la cabecera. Las líneas van por ReplaceLines.
func (r *CreditNoteRepo) Update(cn *entity.CreditNote) error {
	query := `
		UPDATE credit_notes SET client_id = $2, order_number = $3, invoice_number = $4,
			credit_note_number = $5, reason = $6, date = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cn.ID, cn.ClientID, cn.OrderNumber, cn.InvoiceNumber, cn.CreditNoteNumber, cn.Reason, cn.Date)
	if err != nil {
		return fmt.Errorf("update credit note: %w", err)
	}
	return nil
}

// ReplaceLines reemplaza el conjunto completo de líneas.
func (r *CreditNoteRepo) ReplaceLines(creditNoteID string, lines []entity.LineItem) error {
	return replaceLines(r.q, "credit_note_lines", "credit_note_id", creditNoteID, lines)
}

// Delete elimina la nota y sus líneas.
func (r *CreditNoteRepo) Delete(id string) error {
	if err := deleteLines(r.q, "credit_note_lines", "credit_note_id", id); err != nil {
		return err
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM credit_notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete credit note: %w", err)
	}
	return nil
}

// List lista notas de crédito filtradas, más recientes primero.
func (r *CreditNoteRepo) List(f repository.CreditNoteFilter) ([]*entity.CreditNote, error) {
	query := `
		SELECT ` + creditNoteColumns + `
		FROM credit_notes
		WHERE ($1 = '' OR client_id IN (SELECT id FROM clients WHERE name ILIKE '%' || $1 || '%'))
		  AND ($2 = '' OR order_number ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR invoice_number ILIKE '%' || $3 || '%')
		  AND ($4 = '' OR credit_note_number ILIKE '%' || $4 || '%')
		  AND ($5 = '' OR reason ILIKE '%' || $5 || '%')
		  AND ($6 = '' OR created_by = $6)
		  AND ($7::timestamptz IS NULL OR date >= $7)
		  AND ($8::timestamptz IS NULL OR date < $8)
		ORDER BY date DESC
		LIMIT $9 OFFSET $10`
	rows, err := r.q.Query(context.Background(), query,
		f.Client, f.OrderNumber, f.InvoiceNumber, f.CreditNoteNumber, f.Reason, f.Creator,
		nullTime(f.From), nullTime(f.To), pageLimit(f.Limit), f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list credit notes: %w", err)
	}
	defer rows.Close()

	var out []*entity.CreditNote
	for rows.Next() {
		var cn entity.CreditNote
		if err := rows.Scan(&cn.ID, &cn.ClientID, &cn.OrderNumber, &cn.InvoiceNumber,
			&cn.CreditNoteNumber, &cn.Reason, &cn.Date, &cn.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan credit note: %w", err)
		}
		out = append(out, &cn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, cn := range out {
		if cn.Lines, err = loadLines(r.q, "credit_note_lines", "credit_note_id", cn.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CountByClient cuenta notas de crédito del cliente (guarda referencial).
func (r *CreditNoteRepo) CountByClient(clientID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM credit_notes WHERE client_id = $1`, clientID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count credit notes by client: %w", err)
	}
	return n, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación de ProductionRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

const productionColumns = `id, operator_id, date, created_by`

// Create inserta la producción con sus líneas.
func (r *ProductionRepo) Create(p *entity.Production) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO productions (id, operator_id, date, created_by) VALUES ($1, $2, $3, $4)`,
		p.ID, p.OperatorID, p.Date, p.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return insertLines(r.q, "production_lines", "production_id", p.ID, p.Lines)
}

// GetByID obtiene una producción con sus líneas.
func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	var p entity.Production
	err := r.q.QueryRow(context.Background(),
		`SELECT `+productionColumns+` FROM productions WHERE id = $1`, id).
		Scan(&p.ID, &p.OperatorID, &p.Date, &p.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	if p.Lines, err = loadLines(r.q, "production_lines", "production_id", p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update actualiza la cabecera. Las líneas van por ReplaceLines.
func (r *ProductionRepo) Update(p *entity.Production) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productions SET operator_id = $2, date = $3 WHERE id = $1`,
		p.ID, p.OperatorID, p.Date)
	if err != nil {
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// ReplaceLines reemplaza el conjunto completo de líneas.
func (r *ProductionRepo) ReplaceLines(productionID string, lines []entity.LineItem) error {
	return replaceLines(r.q, "production_lines", "production_id", productionID, lines)
}

// Delete elimina la producción y sus líneas.
func (r *ProductionRepo) Delete(id string) error {
	if err := deleteLines(r.q, "production_lines", "production_id", id); err != nil {
		return err
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM productions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}

// List lista producciones filtradas, más recientes primero.
func (r *ProductionRepo) List(f repository.ProductionFilter) ([]*entity.Production, error) {
	query := `
		SELECT ` + productionColumns + `
		FROM productions
		WHERE ($1 = '' OR operator_id IN (SELECT id FROM operators WHERE name ILIKE '%' || $1 || '%'))
		  AND ($2 = '' OR created_by = $2)
		  AND ($3::timestamptz IS NULL OR date >= $3)
		  AND ($4::timestamptz IS NULL OR date < $4)
		ORDER BY date DESC
		LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(context.Background(), query,
		f.Operator, f.Creator, nullTime(f.From), nullTime(f.To), pageLimit(f.Limit), f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.OperatorID, &p.Date, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		if p.Lines, err = loadLines(r.q, "production_lines", "production_id", p.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CountByOperator cuenta producciones del operario (guarda referencial).
func (r *ProductionRepo) CountByOperator(operatorID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM productions WHERE operator_id = $1`, operatorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count productions by operator: %w", err)
	}
	return n, nil
}

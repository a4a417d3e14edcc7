package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
)

var _ repository.InternalConsumptionRepository = (*InternalConsumptionRepo)(nil)

// InternalConsumptionRepo implementación de InternalConsumptionRepository
// sobre PostgreSQL (usable con pool o tx).
type InternalConsumptionRepo struct {
	q Querier
}

// NewInternalConsumptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInternalConsumptionRepository(q Querier) *InternalConsumptionRepo {
	return &InternalConsumptionRepo{q: q}
}

const consumptionColumns = `id, withdrawn_by, area, reason, date, created_by`

// Create inserta el consumo interno con sus líneas.
func (r *InternalConsumptionRepo) Create(c *entity.InternalConsumption) error {
	query := `
		INSERT INTO internal_consumptions (id, withdrawn_by, area, reason, date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.WithdrawnBy, c.Area, c.Reason, c.Date, c.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert internal consumption: %w", err)
	}
	return insertLines(r.q, "internal_consumption_lines", "consumption_id", c.ID, c.Lines)
}

// GetByID obtiene un consumo interno con sus líneas.
func (r *InternalConsumptionRepo) GetByID(id string) (*entity.InternalConsumption, error) {
	var c entity.InternalConsumption
	err := r.q.QueryRow(context.Background(),
		`SELECT `+consumptionColumns+` FROM internal_consumptions WHERE id = $1`, id).
		Scan(&c.ID, &c.WithdrawnBy, &c.Area, &c.Reason, &c.Date, &c.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get internal consumption: %w", err)
	}
	if c.Lines, err = loadLines(r.q, "internal_consumption_lines", "consumption_id", c.ID); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update actualiza la cabecera. Las líneas van por ReplaceLines.
func (r *InternalConsumptionRepo) Update(c *entity.InternalConsumption) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE internal_consumptions SET withdrawn_by = $2, area = $3, reason = $4, date = $5 WHERE id = $1`,
		c.ID, c.WithdrawnBy, c.Area, c.Reason, c.Date)
	if err != nil {
		return fmt.Errorf("update internal consumption: %w", err)
	}
	return nil
}

// ReplaceLines reemplaza el conjunto completo de líneas.
func (r *InternalConsumptionRepo) ReplaceLines(consumptionID string, lines []entity.LineItem) error {
	return replaceLines(r.q, "internal_consumption_lines", "consumption_id", consumptionID, lines)
}

// Delete elimina el consumo y sus líneas.
func (r *InternalConsumptionRepo) Delete(id string) error {
	if err := deleteLines(r.q, "internal_consumption_lines", "consumption_id", id); err != nil {
		return err
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM internal_consumptions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete internal consumption: %w", err)
	}
	return nil
}

// List lista consumos internos filtrados, más recientes primero.
func (r *InternalConsumptionRepo) List(f repository.InternalConsumptionFilter) ([]*entity.InternalConsumption, error) {
	query := `
		SELECT ` + consumptionColumns + `
		FROM internal_consumptions
		WHERE ($1 = '' OR withdrawn_by ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR area ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR reason ILIKE '%' || $3 || '%')
		  AND ($4 = '' OR created_by = $4)
		  AND ($5::timestamptz IS NULL OR date >= $5)
		  AND ($6::timestamptz IS NULL OR date < $6)
		ORDER BY date DESC
		LIMIT $7 OFFSET $8`
	rows, err := r.q.Query(context.Background(), query,
		f.WithdrawnBy, f.Area, f.Reason, f.Creator,
		nullTime(f.From), nullTime(f.To), pageLimit(f.Limit), f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list internal consumptions: %w", err)
	}
	defer rows.Close()

	var out []*entity.InternalConsumption
	for rows.Next() {
		var c entity.InternalConsumption
		if err := rows.Scan(&c.ID, &c.WithdrawnBy, &c.Area, &c.Reason, &c.Date, &c.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan internal consumption: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range out {
		if c.Lines, err = loadLines(r.q, "internal_consumption_lines", "consumption_id", c.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// Las líneas de producto viven en una tabla satélite por tipo de documento
// (dispatch_lines, receipt_lines, ...), todas con el mismo esquema:
// (doc_id, position, name, quantity, unit). Estos helpers comparten la
// mecánica de insertar, cargar y reemplazar el conjunto completo.

func insertLines(q Querier, table, fkCol, docID string, lines []entity.LineItem) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, position, name, quantity, unit) VALUES ($1, $2, $3, $4, $5)`,
		table, fkCol)
	for i, l := range lines {
		if _, err := q.Exec(context.Background(), query, docID, i, l.Name, l.Quantity, l.Unit); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

func loadLines(q Querier, table, fkCol, docID string) ([]entity.LineItem, error) {
	query := fmt.Sprintf(
		`SELECT name, quantity, unit FROM %s WHERE %s = $1 ORDER BY position`,
		table, fkCol)
	rows, err := q.Query(context.Background(), query, docID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	var out []entity.LineItem
	for rows.Next() {
		var l entity.LineItem
		if err := rows.Scan(&l.Name, &l.Quantity, &l.Unit); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func deleteLines(q Querier, table, fkCol, docID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, fkCol)
	if _, err := q.Exec(context.Background(), query, docID); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

// replaceLines borra e inserta el conjunto completo. El reemplazo es
// atómico porque siempre corre dentro de la tx del documento.
func replaceLines(q Querier, table, fkCol, docID string, lines []entity.LineItem) error {
	if err := deleteLines(q, table, fkCol, docID); err != nil {
		return err
	}
	return insertLines(q, table, fkCol, docID, lines)
}

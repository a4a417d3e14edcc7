package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// Line línea de producto tal como llega del caller: nombre libre, cantidad y
// unidad. Quantity es puntero para distinguir "ausente" de cero y rechazar
// líneas incompletas antes de abrir la transacción.
type Line struct {
	Name     string           `json:"nombre"`
	Quantity *decimal.Decimal `json:"cantidad"`
	Unit     string           `json:"unidad"`
}

// ValidateLines rechaza cualquier línea sin nombre, cantidad o unidad.
func ValidateLines(lines []Line) error {
	for _, l := range lines {
		if l.Name == "" || l.Quantity == nil || l.Unit == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ToLineItems convierte las líneas del caller a entidades de dominio.
// Presupone ValidateLines previo.
func ToLineItems(lines []Line) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.LineItem{Name: l.Name, Quantity: *l.Quantity, Unit: l.Unit})
	}
	return items
}

// FromLineItems convierte líneas de dominio a su representación de salida.
func FromLineItems(items []entity.LineItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		q := it.Quantity
		lines = append(lines, Line{Name: it.Name, Quantity: &q, Unit: it.Unit})
	}
	return lines
}

// PageRequest paginación para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto y devuelve limit/offset.
func (p *PageRequest) DefaultPage() (limit, offset int) {
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return p.Limit, (p.Page - 1) * p.Limit
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

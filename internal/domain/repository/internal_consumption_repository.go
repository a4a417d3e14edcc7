package repository

import (
	"time"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// InternalConsumptionFilter filtros de listado de consumos internos.
type InternalConsumptionFilter struct {
	WithdrawnBy string
	Area        string
	Reason      string
	Creator     string
	From        time.Time
	To          time.Time
	Limit       int
	Offset      int
}

// InternalConsumptionRepository puerto de persistencia para consumos internos
// y sus líneas.
type InternalConsumptionRepository interface {
	Create(c *entity.InternalConsumption) error
	GetByID(id string) (*entity.InternalConsumption, error)
	Update(c *entity.InternalConsumption) error
	ReplaceLines(consumptionID string, lines []entity.LineItem) error
	Delete(id string) error
	List(f InternalConsumptionFilter) ([]*entity.InternalConsumption, error)
}

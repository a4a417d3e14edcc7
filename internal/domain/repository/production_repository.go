package repository

import (
	"time"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// ProductionFilter filtros de listado de producciones.
type ProductionFilter struct {
	Operator string
	Creator  string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// ProductionRepository puerto de persistencia para producciones y sus líneas.
type ProductionRepository interface {
	Create(p *entity.Production) error
	GetByID(id string) (*entity.Production, error)
	Update(p *entity.Production) error
	ReplaceLines(productionID string, lines []entity.LineItem) error
	Delete(id string) error
	List(f ProductionFilter) ([]*entity.Production, error)
	CountByOperator(operatorID string) (int, error)
}

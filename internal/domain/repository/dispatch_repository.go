package repository

import (
	"time"

	"github.com/bodegacl/bodega-api/internal/domain/entity"
)

// DispatchFilter filtros de listado de despachos. Los campos de texto se
// comparan por subcadena insensible a mayúsculas; From/To acotan la fecha.
type DispatchFilter struct {
	Client  string
	Order   string
	Driver  string
	Creator string
	Invoice string
	From    time.Time
	To      time.Time
	Limit   int
	Offset  int
}

// DispatchRepository puerto de persistencia para despachos y sus líneas.
// Las líneas pertenecen en exclusiva al documento: se insertan con él y se
// reemplazan como conjunto completo, nunca una a una.
type DispatchRepository interface {
	Create(d *entity.Dispatch) error
	GetByID(id string) (*entity.Dispatch, error)
	GetByOrder(order string) (*entity.Dispatch, error)
	Update(d *entity.Dispatch) error
	ReplaceLines(dispatchID string, lines []entity.LineItem) error
	Delete(id string) error
	List(f DispatchFilter) ([]*entity.Dispatch, error)
	// DatesByCreatorSince fechas de despachos del usuario desde un instante
	// (para el conteo mensual por día del dashboard).
	DatesByCreatorSince(createdBy string, since time.Time) ([]time.Time, error)
	CountByDriver(driverID string) (int, error)
	CountByClient(clientID string) (int, error)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
	"github.com/bodegacl/bodega-api/pkg/logger"
)

// InternalConsumptionUseCase retiros de mercadería para uso interno. Es la
// única salida de stock que puede dejar saldo negativo sin número de orden.
type InternalConsumptionUseCase struct {
	tx      stockengine.TxRunner
	applier *stockengine.Applier
	catalog stockengine.Catalog
	log     *logger.Logger
}

// NewInternalConsumptionUseCase construye el caso de uso.
func NewInternalConsumptionUseCase(tx stockengine.TxRunner, applier *stockengine.Applier, log *logger.Logger) *InternalConsumptionUseCase {
	return &InternalConsumptionUseCase{tx: tx, applier: applier, log: log}
}

// Create registra un consumo interno y descuenta el stock.
func (uc *InternalConsumptionUseCase) Create(ctx context.Context, userID string, in dto.CreateInternalConsumptionRequest) (*dto.InternalConsumptionResponse, error) {
	if in.WithdrawnBy == "" || in.Reason == "" || len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: nombre_retira, motivo y productos son requeridos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateLines(in.Lines); err != nil {
		return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
	}
	lines := dto.ToLineItems(in.Lines)

	var resp *dto.InternalConsumptionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		if err := uc.catalog.ResolveLines(r.Products, lines, userID); err != nil {
			return err
		}

		consumption := &entity.InternalConsumption{
			ID:          uuid.New().String(),
			WithdrawnBy: in.WithdrawnBy,
			Area:        in.Area,
			Reason:      in.Reason,
			Date:        time.Now().UTC(),
			CreatedBy:   userID,
			Lines:       lines,
		}
		if err := r.Consumptions.Create(consumption); err != nil {
			return err
		}
		if err := uc.applier.ApplyCreate(r.Products, stock.KindInternalConsumption, lines); err != nil {
			return err
		}

		resp = consumptionResponse(consumption)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("retira", in.WithdrawnBy).Str("usuario", userID).Msg("consumo interno creado")
	return resp, nil
}

// Update modifica un consumo interno. Los campos vacíos se conservan; si
// vienen líneas nuevas el stock se ajusta por la diferencia.
func (uc *InternalConsumptionUseCase) Update(ctx context.Context, id string, userID string, in dto.UpdateInternalConsumptionRequest) (*dto.InternalConsumptionResponse, error) {
	if in.Lines != nil {
		if len(in.Lines) == 0 {
			return nil, fmt.Errorf("%w: productos no puede quedar vacío", domain.ErrInvalidInput)
		}
		if err := dto.ValidateLines(in.Lines); err != nil {
			return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
		}
	}

	var resp *dto.InternalConsumptionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		consumption, err := r.Consumptions.GetByID(id)
		if err != nil {
			return err
		}
		if consumption == nil {
			return fmt.Errorf("%w: consumo interno %s", domain.ErrNotFound, id)
		}

		if in.WithdrawnBy != "" {
			consumption.WithdrawnBy = in.WithdrawnBy
		}
		if in.Area != "" {
			consumption.Area = in.Area
		}
		if in.Reason != "" {
			consumption.Reason = in.Reason
		}

		if in.Lines != nil {
			newLines := dto.ToLineItems(in.Lines)
			if err := uc.catalog.ResolveLines(r.Products, newLines, userID); err != nil {
				return err
			}
			deltas := stock.Diff(consumption.Lines, newLines)
			if err := uc.applier.ApplyDeltas(r.Products, stock.KindInternalConsumption, deltas); err != nil {
				return err
			}
			if err := r.Consumptions.ReplaceLines(consumption.ID, newLines); err != nil {
				return err
			}
			consumption.Lines = newLines
		}

		if err := r.Consumptions.Update(consumption); err != nil {
			return err
		}
		resp = consumptionResponse(consumption)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete devuelve el stock retirado y elimina el documento.
func (uc *InternalConsumptionUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		consumption, err := r.Consumptions.GetByID(id)
		if err != nil {
			return err
		}
		if consumption == nil {
			return fmt.Errorf("%w: consumo interno %s", domain.ErrNotFound, id)
		}
		if err := uc.applier.ApplyReverse(r.Products, stock.KindInternalConsumption, consumption.Lines); err != nil {
			return err
		}
		return r.Consumptions.Delete(consumption.ID)
	})
}

// Get detalle de un consumo interno.
func (uc *InternalConsumptionUseCase) Get(ctx context.Context, id string) (*dto.InternalConsumptionResponse, error) {
	var resp *dto.InternalConsumptionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		consumption, err := r.Consumptions.GetByID(id)
		if err != nil {
			return err
		}
		if consumption == nil {
			return fmt.Errorf("%w: consumo interno %s", domain.ErrNotFound, id)
		}
		resp = consumptionResponse(consumption)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List consumos internos con filtros y paginación.
func (uc *InternalConsumptionUseCase) List(ctx context.Context, f repository.InternalConsumptionFilter) ([]*dto.InternalConsumptionResponse, error) {
	var out []*dto.InternalConsumptionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Consumptions.List(f)
		if err != nil {
			return err
		}
		out = make([]*dto.InternalConsumptionResponse, 0, len(list))
		for _, c := range list {
			out = append(out, consumptionResponse(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func consumptionResponse(c *entity.InternalConsumption) *dto.InternalConsumptionResponse {
	return &dto.InternalConsumptionResponse{
		ID:          c.ID,
		WithdrawnBy: c.WithdrawnBy,
		Area:        c.Area,
		Reason:      c.Reason,
		CreatedBy:   c.CreatedBy,
		Date:        formatDate(c.Date),
		Lines:       dto.FromLineItems(c.Lines),
	}
}

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

// ProductionUseCase ciclo de vida de corridas de producción (entrada de
// stock del producto terminado).
type ProductionUseCase struct {
	tx      stockengine.TxRunner
	applier *stockengine.Applier
	catalog stockengine.Catalog
	log     *logger.Logger
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(tx stockengine.TxRunner, applier *stockengine.Applier, log *logger.Logger) *ProductionUseCase {
	return &ProductionUseCase{tx: tx, applier: applier, log: log}
}

// Create registra una producción y suma el stock de cada línea. El operario
// se resuelve por nombre normalizado y se crea si no existe.
func (uc *ProductionUseCase) Create(ctx context.Context, userID string, in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	if in.Operator == "" || len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: operario y productos son requeridos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateLines(in.Lines); err != nil {
		return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
	}
	lines := dto.ToLineItems(in.Lines)

	var resp *dto.ProductionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		operator, err := resolveOperator(r.Operators, in.Operator, userID)
		if err != nil {
			return err
		}
		if err := uc.catalog.ResolveLines(r.Products, lines, userID); err != nil {
			return err
		}

		p := &entity.Production{
			ID:         uuid.New().String(),
			OperatorID: operator.ID,
			Date:       time.Now().UTC(),
			CreatedBy:  userID,
			Lines:      lines,
		}
		if err := r.Productions.Create(p); err != nil {
			return err
		}
		if err := uc.applier.ApplyCreate(r.Products, stock.KindProduction, lines); err != nil {
			return err
		}

		resp = productionResponse(p, operator.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario", userID).Msg("producción creada")
	return resp, nil
}

// Update reemplaza operario y líneas, ajustando stock por deltas.
func (uc *ProductionUseCase) Update(ctx context.Context, id, userID string, in dto.UpdateProductionRequest) (*dto.ProductionResponse, error) {
	if in.Operator == "" || len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: operario y productos son requeridos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateLines(in.Lines); err != nil {
		return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
	}

	var resp *dto.ProductionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		p, err := r.Productions.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producción %s", domain.ErrNotFound, id)
		}

		operator, err := resolveOperator(r.Operators, in.Operator, userID)
		if err != nil {
			return err
		}
		p.OperatorID = operator.ID

		newLines := dto.ToLineItems(in.Lines)
		if err := uc.catalog.ResolveLines(r.Products, newLines, userID); err != nil {
			return err
		}
		deltas := stock.Diff(p.Lines, newLines)
		if err := uc.applier.ApplyDeltas(r.Products, stock.KindProduction, deltas); err != nil {
			return err
		}
		if err := r.Productions.ReplaceLines(p.ID, newLines); err != nil {
			return err
		}
		p.Lines = newLines

		if err := r.Productions.Update(p); err != nil {
			return err
		}
		resp = productionResponse(p, operator.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete revierte el stock sumado por la producción y elimina el documento.
func (uc *ProductionUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		p, err := r.Productions.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producción %s", domain.ErrNotFound, id)
		}
		if err := uc.applier.ApplyReverse(r.Products, stock.KindProduction, p.Lines); err != nil {
			return err
		}
		return r.Productions.Delete(p.ID)
	})
}

// Get detalle de una producción.
func (uc *ProductionUseCase) Get(ctx context.Context, id string) (*dto.ProductionResponse, error) {
	var resp *dto.ProductionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		p, err := r.Productions.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producción %s", domain.ErrNotFound, id)
		}
		resp = productionResponse(p, operatorName(r.Operators, p.OperatorID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List producciones con filtros y paginación.
func (uc *ProductionUseCase) List(ctx context.Context, f repository.ProductionFilter) ([]*dto.ProductionResponse, error) {
	var out []*dto.ProductionResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Productions.List(f)
		if err != nil {
			return err
		}
		out = make([]*dto.ProductionResponse, 0, len(list))
		for _, p := range list {
			out = append(out, productionResponse(p, operatorName(r.Operators, p.OperatorID)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func productionResponse(p *entity.Production, operator string) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:        p.ID,
		Operator:  operator,
		CreatedBy: p.CreatedBy,
		Date:      formatDate(p.Date),
		Lines:     dto.FromLineItems(p.Lines),
	}
}

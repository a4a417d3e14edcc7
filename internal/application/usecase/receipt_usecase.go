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

// ReceiptUseCase ciclo de vida de recepciones de proveedor (entrada de
// stock). Comparte la guarda de órdenes duplicadas con los despachos.
type ReceiptUseCase struct {
	tx      stockengine.TxRunner
	applier *stockengine.Applier
	catalog stockengine.Catalog
	log     *logger.Logger
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(tx stockengine.TxRunner, applier *stockengine.Applier, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{tx: tx, applier: applier, log: log}
}

// Create crea una recepción y suma el stock de cada línea. El proveedor se
// resuelve por nombre normalizado y se crea si no existe.
func (uc *ReceiptUseCase) Create(ctx context.Context, userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.Order == "" || in.Supplier == "" || len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: orden, proveedor y productos son requeridos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateLines(in.Lines); err != nil {
		return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
	}
	lines := dto.ToLineItems(in.Lines)

	var resp *dto.ReceiptResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		if !in.Force {
			existing, err := r.Receipts.GetByOrder(in.Order)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrDuplicateOrder
			}
		}

		supplier, err := resolveSupplier(r.Suppliers, in.Supplier, userID)
		if err != nil {
			return err
		}
		if err := uc.catalog.ResolveLines(r.Products, lines, userID); err != nil {
			return err
		}

		rc := &entity.Receipt{
			ID:         uuid.New().String(),
			Order:      in.Order,
			SupplierID: supplier.ID,
			Date:       time.Now().UTC(),
			Status:     entity.ReceiptStatusPending,
			CreatedBy:  userID,
			Lines:      lines,
		}
		if err := r.Receipts.Create(rc); err != nil {
			return err
		}
		if err := uc.applier.ApplyCreate(r.Products, stock.KindReceipt, lines); err != nil {
			return err
		}

		resp = receiptResponse(rc, supplier.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("orden", in.Order).Str("usuario", userID).Msg("recepción creada")
	return resp, nil
}

// Update reemplaza la recepción completa: proveedor, orden, estado y el
// conjunto de líneas, ajustando stock por deltas contra las líneas previas.
func (uc *ReceiptUseCase) Update(ctx context.Context, id, userID string, in dto.UpdateReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.Order == "" || in.Supplier == "" || len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: orden, proveedor y productos son requeridos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateLines(in.Lines); err != nil {
		return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
	}

	var resp *dto.ReceiptResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		rc, err := r.Receipts.GetByID(id)
		if err != nil {
			return err
		}
		if rc == nil {
			return fmt.Errorf("%w: recepción %s", domain.ErrNotFound, id)
		}

		supplier, err := resolveSupplier(r.Suppliers, in.Supplier, userID)
		if err != nil {
			return err
		}
		rc.SupplierID = supplier.ID
		rc.Order = in.Order
		if in.Status != "" {
			rc.Status = in.Status
		}

		newLines := dto.ToLineItems(in.Lines)
		if err := uc.catalog.ResolveLines(r.Products, newLines, userID); err != nil {
			return err
		}
		deltas := stock.Diff(rc.Lines, newLines)
		if err := uc.applier.ApplyDeltas(r.Products, stock.KindReceipt, deltas); err != nil {
			return err
		}
		if err := r.Receipts.ReplaceLines(rc.ID, newLines); err != nil {
			return err
		}
		rc.Lines = newLines

		if err := r.Receipts.Update(rc); err != nil {
			return err
		}
		resp = receiptResponse(rc, supplier.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete revierte el stock sumado por la recepción (truncando a 0 según la
// política del tipo) y elimina el documento.
func (uc *ReceiptUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		rc, err := r.Receipts.GetByID(id)
		if err != nil {
			return err
		}
		if rc == nil {
			return fmt.Errorf("%w: recepción %s", domain.ErrNotFound, id)
		}
		if err := uc.applier.ApplyReverse(r.Products, stock.KindReceipt, rc.Lines); err != nil {
			return err
		}
		return r.Receipts.Delete(rc.ID)
	})
}

// Get detalle de una recepción.
func (uc *ReceiptUseCase) Get(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	var resp *dto.ReceiptResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		rc, err := r.Receipts.GetByID(id)
		if err != nil {
			return err
		}
		if rc == nil {
			return fmt.Errorf("%w: recepción %s", domain.ErrNotFound, id)
		}
		resp = receiptResponse(rc, supplierName(r.Suppliers, rc.SupplierID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List recepciones con filtros y paginación.
func (uc *ReceiptUseCase) List(ctx context.Context, f repository.ReceiptFilter) ([]*dto.ReceiptResponse, error) {
	var out []*dto.ReceiptResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Receipts.List(f)
		if err != nil {
			return err
		}
		out = make([]*dto.ReceiptResponse, 0, len(list))
		for _, rc := range list {
			out = append(out, receiptResponse(rc, supplierName(r.Suppliers, rc.SupplierID)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func receiptResponse(r *entity.Receipt, supplier string) *dto.ReceiptResponse {
	status := r.Status
	if status == "" {
		status = entity.ReceiptStatusPending
	}
	return &dto.ReceiptResponse{
		ID:        r.ID,
		Order:     r.Order,
		Supplier:  supplier,
		CreatedBy: r.CreatedBy,
		Date:      formatDate(r.Date),
		Status:    status,
		Lines:     dto.FromLineItems(r.Lines),
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
	"github.com/bodegacl/bodega-api/pkg/logger"
	"github.com/bodegacl/bodega-api/pkg/timezone"
)

// DispatchUseCase ciclo de vida de despachos: creación, actualización con
// reconciliación de stock por deltas, eliminación con reversa exacta y la
// máquina de estados de entrega. Toda mutación corre en una transacción.
type DispatchUseCase struct {
	tx      stockengine.TxRunner
	applier *stockengine.Applier
	catalog stockengine.Catalog
	log     *logger.Logger
}

// NewDispatchUseCase construye el caso de uso.
func NewDispatchUseCase(tx stockengine.TxRunner, applier *stockengine.Applier, log *logger.Logger) *DispatchUseCase {
	return &DispatchUseCase{tx: tx, applier: applier, log: log}
}

// Create crea un despacho y rebaja el stock de cada línea. La guarda de
// órdenes duplicadas exige force explícito para repetir un número de orden.
func (uc *DispatchUseCase) Create(ctx context.Context, userID string, in dto.CreateDispatchRequest) (*dto.DispatchResponse, error) {
	// Validación completa antes de abrir la transacción de mutación.
	if in.Order == "" || in.Client == "" || in.DriverID == "" || len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: orden, cliente, chofer y productos son requeridos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateLines(in.Lines); err != nil {
		return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
	}
	lines := dto.ToLineItems(in.Lines)

	var resp *dto.DispatchResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		if !in.Force {
			existing, err := r.Dispatches.GetByOrder(in.Order)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrDuplicateOrder
			}
		}

		client, err := resolveClient(r.Clients, in.Client, userID)
		if err != nil {
			return err
		}
		driver, err := r.Drivers.GetByID(in.DriverID)
		if err != nil {
			return err
		}
		if driver == nil {
			return fmt.Errorf("%w: chofer %s", domain.ErrNotFound, in.DriverID)
		}

		if err := uc.catalog.ResolveLines(r.Products, lines, userID); err != nil {
			return err
		}

		d := &entity.Dispatch{
			ID:            uuid.New().String(),
			Order:         in.Order,
			ClientID:      client.ID,
			DriverID:      driver.ID,
			PackageNumber: in.PackageNumber,
			InvoiceNumber: in.InvoiceNumber,
			Date:          time.Now().UTC(),
			Status:        entity.DispatchStatusPending,
			CreatedBy:     userID,
			Lines:         lines,
		}
		if err := r.Dispatches.Create(d); err != nil {
			return err
		}
		if err := uc.applier.ApplyCreate(r.Products, stock.KindDispatch, lines); err != nil {
			return err
		}

		resp = dispatchResponse(d, client.Name, driver.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("orden", in.Order).Str("usuario", userID).Msg("despacho creado")
	return resp, nil
}

// Update actualiza campos y, si vienen líneas, reemplaza el conjunto
// completo ajustando stock por deltas. El diff se calcula sobre las líneas
// guardadas ANTES de sobrescribirlas; hacerlo al revés duplicaría el efecto
// de las cantidades que solo cambian.
func (uc *DispatchUseCase) Update(ctx context.Context, id, userID string, in dto.UpdateDispatchRequest) (*dto.DispatchResponse, error) {
	if in.Lines != nil {
		if err := dto.ValidateLines(in.Lines); err != nil {
			return nil, fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
		}
	}

	var resp *dto.DispatchResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		d, err := r.Dispatches.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: despacho %s", domain.ErrNotFound, id)
		}

		if in.Order != "" {
			d.Order = in.Order
		}
		if in.Client != "" {
			client, err := resolveClient(r.Clients, in.Client, userID)
			if err != nil {
				return err
			}
			d.ClientID = client.ID
		}
		if in.DriverID != "" {
			driver, err := r.Drivers.GetByID(in.DriverID)
			if err != nil {
				return err
			}
			if driver == nil {
				return fmt.Errorf("%w: chofer %s", domain.ErrNotFound, in.DriverID)
			}
			d.DriverID = driver.ID
		}
		if in.PackageNumber != nil {
			d.PackageNumber = *in.PackageNumber
		}
		if in.InvoiceNumber != nil {
			d.InvoiceNumber = strings.TrimSpace(*in.InvoiceNumber)
		}
		if in.Status != "" {
			d.ApplyStatus(in.Status, time.Now().UTC())
		}
		if in.Date != "" {
			if parsed, err := timezone.ParseDateTime(in.Date); err == nil {
				d.Date = parsed
			}
		}

		if in.Lines != nil {
			newLines := dto.ToLineItems(in.Lines)
			if err := uc.catalog.ResolveLines(r.Products, newLines, userID); err != nil {
				return err
			}
			deltas := stock.Diff(d.Lines, newLines)
			if err := uc.applier.ApplyDeltas(r.Products, stock.KindDispatch, deltas); err != nil {
				return err
			}
			if err := r.Dispatches.ReplaceLines(d.ID, newLines); err != nil {
				return err
			}
			d.Lines = newLines
		}

		if err := r.Dispatches.Update(d); err != nil {
			return err
		}
		resp = dispatchResponse(d, clientName(r.Clients, d.ClientID), driverName(r.Drivers, d.DriverID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete revierte el efecto acumulado del despacho sobre el stock y elimina
// el documento con sus líneas, todo en la misma transacción.
func (uc *DispatchUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		d, err := r.Dispatches.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: despacho %s", domain.ErrNotFound, id)
		}
		if err := uc.applier.ApplyReverse(r.Products, stock.KindDispatch, d.Lines); err != nil {
			return err
		}
		return r.Dispatches.Delete(d.ID)
	})
}

// MarkDriverDelivered marca la entrega al chofer.
func (uc *DispatchUseCase) MarkDriverDelivered(ctx context.Context, id string) (*dto.DispatchResponse, error) {
	return uc.mark(ctx, id, func(d *entity.Dispatch, now time.Time) error {
		return d.MarkDriverDelivered(now)
	})
}

// MarkClientDelivered marca la entrega al cliente (implica chofer).
func (uc *DispatchUseCase) MarkClientDelivered(ctx context.Context, id string) (*dto.DispatchResponse, error) {
	return uc.mark(ctx, id, func(d *entity.Dispatch, now time.Time) error {
		d.MarkClientDelivered(now)
		return nil
	})
}

func (uc *DispatchUseCase) mark(ctx context.Context, id string, fn func(*entity.Dispatch, time.Time) error) (*dto.DispatchResponse, error) {
	var resp *dto.DispatchResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		d, err := r.Dispatches.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: despacho %s", domain.ErrNotFound, id)
		}
		if err := fn(d, time.Now().UTC()); err != nil {
			return err
		}
		if err := r.Dispatches.Update(d); err != nil {
			return err
		}
		resp = dispatchResponse(d, clientName(r.Clients, d.ClientID), driverName(r.Drivers, d.DriverID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get detalle de un despacho con maestros resueltos.
func (uc *DispatchUseCase) Get(ctx context.Context, id string) (*dto.DispatchResponse, error) {
	var resp *dto.DispatchResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		d, err := r.Dispatches.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: despacho %s", domain.ErrNotFound, id)
		}
		resp = dispatchResponse(d, clientName(r.Clients, d.ClientID), driverName(r.Drivers, d.DriverID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List despachos con filtros y paginación.
func (uc *DispatchUseCase) List(ctx context.Context, f repository.DispatchFilter) ([]*dto.DispatchResponse, error) {
	var out []*dto.DispatchResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Dispatches.List(f)
		if err != nil {
			return err
		}
		out = make([]*dto.DispatchResponse, 0, len(list))
		for _, d := range list {
			out = append(out, dispatchResponse(d, clientName(r.Clients, d.ClientID), driverName(r.Drivers, d.DriverID)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyCounts cuenta los despachos del usuario en el mes local en curso,
// agrupados por día (índice 0 = día 1).
func (uc *DispatchUseCase) MonthlyCounts(ctx context.Context, userID string) ([31]int, error) {
	var counts [31]int
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		dates, err := r.Dispatches.DatesByCreatorSince(userID, timezone.MonthStart(time.Now()))
		if err != nil {
			return err
		}
		for _, dt := range dates {
			if day := timezone.LocalDay(dt); day >= 1 && day <= 31 {
				counts[day-1]++
			}
		}
		return nil
	})
	return counts, err
}

func dispatchResponse(d *entity.Dispatch, client, driver string) *dto.DispatchResponse {
	return &dto.DispatchResponse{
		ID:              d.ID,
		Order:           d.Order,
		Client:          client,
		Driver:          driver,
		CreatedBy:       d.CreatedBy,
		Date:            formatDate(d.Date),
		Status:          d.DerivedStatus(),
		DeliveredDriver: d.DeliveredDriver,
		DeliveredClient: d.DeliveredClient,
		PackageNumber:   d.PackageNumber,
		InvoiceNumber:   d.InvoiceNumber,
		Lines:           dto.FromLineItems(d.Lines),
	}
}

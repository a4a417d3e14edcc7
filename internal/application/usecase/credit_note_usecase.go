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

// CreditNoteUseCase ciclo de vida de notas de crédito: mercadería devuelta
// que reingresa al inventario (entrada de stock).
type CreditNoteUseCase struct {
	tx      stockengine.TxRunner
	applier *stockengine.Applier
	catalog stockengine.Catalog
	log     *logger.Logger
}

// NewCreditNoteUseCase construye el caso de uso.
func NewCreditNoteUseCase(tx stockengine.TxRunner, applier *stockengine.Applier, log *logger.Logger) *CreditNoteUseCase {
	return &CreditNoteUseCase{tx: tx, applier: applier, log: log}
}

func validateCreditNote(in dto.CreateCreditNoteRequest) error {
	if in.Client == "" || in.OrderNumber == "" || in.InvoiceNumber == "" ||
		in.CreditNoteNumber == "" || in.Reason == "" || len(in.Lines) == 0 {
		return fmt.Errorf("%w: faltan campos requeridos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateLines(in.Lines); err != nil {
		return fmt.Errorf("%w: cada producto requiere nombre, cantidad y unidad", err)
	}
	return nil
}

// Create crea una nota de crédito y suma el stock devuelto.
func (uc *CreditNoteUseCase) Create(ctx context.Context, userID string, in dto.CreateCreditNoteRequest) (*dto.CreditNoteResponse, error) {
	if err := validateCreditNote(in); err != nil {
		return nil, err
	}
	lines := dto.ToLineItems(in.Lines)

	var resp *dto.CreditNoteResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		client, err := resolveClient(r.Clients, in.Client, userID)
		if err != nil {
			return err
		}
		if err := uc.catalog.ResolveLines(r.Products, lines, userID); err != nil {
			return err
		}

		cn := &entity.CreditNote{
			ID:               uuid.New().String(),
			ClientID:         client.ID,
			OrderNumber:      in.OrderNumber,
			InvoiceNumber:    in.InvoiceNumber,
			CreditNoteNumber: in.CreditNoteNumber,
			Reason:           in.Reason,
			Date:             time.Now().UTC(),
			CreatedBy:        userID,
			Lines:            lines,
		}
		if err := r.CreditNotes.Create(cn); err != nil {
			return err
		}
		if err := uc.applier.ApplyCreate(r.Products, stock.KindCreditNote, lines); err != nil {
			return err
		}

		resp = creditNoteResponse(cn, client.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("nota", in.CreditNoteNumber).Str("usuario", userID).Msg("nota de crédito creada")
	return resp, nil
}

// Update reemplaza la nota completa, ajustando stock por deltas.
func (uc *CreditNoteUseCase) Update(ctx context.Context, id, userID string, in dto.UpdateCreditNoteRequest) (*dto.CreditNoteResponse, error) {
	if err := validateCreditNote(in); err != nil {
		return nil, err
	}

	var resp *dto.CreditNoteResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		cn, err := r.CreditNotes.GetByID(id)
		if err != nil {
			return err
		}
		if cn == nil {
			return fmt.Errorf("%w: nota de crédito %s", domain.ErrNotFound, id)
		}

		client, err := resolveClient(r.Clients, in.Client, userID)
		if err != nil {
			return err
		}
		cn.ClientID = client.ID
		cn.OrderNumber = in.OrderNumber
		cn.InvoiceNumber = in.InvoiceNumber
		cn.CreditNoteNumber = in.CreditNoteNumber
		cn.Reason = in.Reason

		newLines := dto.ToLineItems(in.Lines)
		if err := uc.catalog.ResolveLines(r.Products, newLines, userID); err != nil {
			return err
		}
		deltas := stock.Diff(cn.Lines, newLines)
		if err := uc.applier.ApplyDeltas(r.Products, stock.KindCreditNote, deltas); err != nil {
			return err
		}
		if err := r.CreditNotes.ReplaceLines(cn.ID, newLines); err != nil {
			return err
		}
		cn.Lines = newLines

		if err := r.CreditNotes.Update(cn); err != nil {
			return err
		}
		resp = creditNoteResponse(cn, client.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete revierte el reingreso (resta, truncando a 0) y elimina la nota.
func (uc *CreditNoteUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		cn, err := r.CreditNotes.GetByID(id)
		if err != nil {
			return err
		}
		if cn == nil {
			return fmt.Errorf("%w: nota de crédito %s", domain.ErrNotFound, id)
		}
		if err := uc.applier.ApplyReverse(r.Products, stock.KindCreditNote, cn.Lines); err != nil {
			return err
		}
		return r.CreditNotes.Delete(cn.ID)
	})
}

// Get detalle de una nota de crédito.
func (uc *CreditNoteUseCase) Get(ctx context.Context, id string) (*dto.CreditNoteResponse, error) {
	var resp *dto.CreditNoteResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		cn, err := r.CreditNotes.GetByID(id)
		if err != nil {
			return err
		}
		if cn == nil {
			return fmt.Errorf("%w: nota de crédito %s", domain.ErrNotFound, id)
		}
		resp = creditNoteResponse(cn, clientName(r.Clients, cn.ClientID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List notas de crédito con filtros y paginación.
func (uc *CreditNoteUseCase) List(ctx context.Context, f repository.CreditNoteFilter) ([]*dto.CreditNoteResponse, error) {
	var out []*dto.CreditNoteResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.CreditNotes.List(f)
		if err != nil {
			return err
		}
		out = make([]*dto.CreditNoteResponse, 0, len(list))
		for _, cn := range list {
			out = append(out, creditNoteResponse(cn, clientName(r.Clients, cn.ClientID)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func creditNoteResponse(cn *entity.CreditNote, client string) *dto.CreditNoteResponse {
	return &dto.CreditNoteResponse{
		ID:               cn.ID,
		Client:           client,
		OrderNumber:      cn.OrderNumber,
		InvoiceNumber:    cn.InvoiceNumber,
		CreditNoteNumber: cn.CreditNoteNumber,
		Reason:           cn.Reason,
		CreatedBy:        cn.CreatedBy,
		Date:             formatDate(cn.Date),
		Lines:            dto.FromLineItems(cn.Lines),
	}
}

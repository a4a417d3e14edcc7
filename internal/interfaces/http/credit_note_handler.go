package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/usecase"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/pkg/timezone"
)

// CreditNoteHandler maneja las peticiones HTTP de notas de crédito.
type CreditNoteHandler struct {
	uc *usecase.CreditNoteUseCase
}

// NewCreditNoteHandler construye el handler.
func NewCreditNoteHandler(uc *usecase.CreditNoteUseCase) *CreditNoteHandler {
	return &CreditNoteHandler{uc: uc}
}

// Create POST /api/credit-notes
func (h *CreditNoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCreditNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/credit-notes con filtros por query.
func (h *CreditNoteHandler) List(c *fiber.Ctx) error {
	f := repository.CreditNoteFilter{
		Client:           c.Query("client"),
		OrderNumber:      c.Query("order_number"),
		InvoiceNumber:    c.Query("invoice_number"),
		CreditNoteNumber: c.Query("credit_note_number"),
		Reason:           c.Query("reason"),
		Creator:          c.Query("usuario"),
	}
	if desde := c.Query("desde"); desde != "" {
		if t, err := timezone.ParseDate(desde); err == nil {
			f.From = t
		}
	}
	if hasta := c.Query("hasta"); hasta != "" {
		if t, err := timezone.DayAfter(hasta); err == nil {
			f.To = t
		}
	}
	f.Limit, _ = strconv.Atoi(c.Query("limit"))
	f.Offset, _ = strconv.Atoi(c.Query("offset"))

	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/credit-notes/:id
func (h *CreditNoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/credit-notes/:id
func (h *CreditNoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCreditNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), userID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/credit-notes/:id
func (h *CreditNoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "nota de crédito eliminada"})
}

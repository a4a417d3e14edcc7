package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/usecase"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/pkg/timezone"
)

// DispatchHandler maneja las peticiones HTTP de despachos.
type DispatchHandler struct {
	uc *usecase.DispatchUseCase
}

// NewDispatchHandler construye el handler.
func NewDispatchHandler(uc *usecase.DispatchUseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc}
}

// Create POST /api/dispatches
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/dispatches con filtros por query.
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	f := repository.DispatchFilter{
		Client:  c.Query("cliente"),
		Order:   c.Query("orden"),
		Driver:  c.Query("chofer"),
		Creator: c.Query("usuario"),
		Invoice: c.Query("factura"),
	}
	if desde := c.Query("desde"); desde != "" {
		if t, err := timezone.ParseDate(desde); err == nil {
			f.From = t
		}
	}
	if hasta := c.Query("hasta"); hasta != "" {
		if t, err := timezone.DayAfter(hasta); err == nil {
			f.To = t // límite exclusivo: incluye todo el día
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

// GetByID GET /api/dispatches/:id
func (h *DispatchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/dispatches/:id
func (h *DispatchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), userID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/dispatches/:id
func (h *DispatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "despacho eliminado"})
}

// MarkDriverDelivered PATCH /api/dispatches/:id/entregado-chofer
func (h *DispatchHandler) MarkDriverDelivered(c *fiber.Ctx) error {
	out, err := h.uc.MarkDriverDelivered(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkClientDelivered PATCH /api/dispatches/:id/entregado-cliente
func (h *DispatchHandler) MarkClientDelivered(c *fiber.Ctx) error {
	out, err := h.uc.MarkClientDelivered(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyCounts GET /api/dispatches/mensual — despachos del usuario en el mes
// en curso, agrupados por día.
func (h *DispatchHandler) MonthlyCounts(c *fiber.Ctx) error {
	counts, err := h.uc.MonthlyCounts(c.Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"dias": counts})
}

package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/usecase"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/pkg/timezone"
)

// InternalConsumptionHandler maneja las peticiones HTTP de consumos internos.
type InternalConsumptionHandler struct {
	uc *usecase.InternalConsumptionUseCase
}

// NewInternalConsumptionHandler construye el handler.
func NewInternalConsumptionHandler(uc *usecase.InternalConsumptionUseCase) *InternalConsumptionHandler {
	return &InternalConsumptionHandler{uc: uc}
}

// Create POST /api/internal-consumptions
func (h *InternalConsumptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInternalConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/internal-consumptions con filtros por query.
func (h *InternalConsumptionHandler) List(c *fiber.Ctx) error {
	f := repository.InternalConsumptionFilter{
		WithdrawnBy: c.Query("nombre_retira"),
		Area:        c.Query("area"),
		Reason:      c.Query("motivo"),
		Creator:     c.Query("usuario"),
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

// GetByID GET /api/internal-consumptions/:id
func (h *InternalConsumptionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/internal-consumptions/:id
func (h *InternalConsumptionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInternalConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), userID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/internal-consumptions/:id
func (h *InternalConsumptionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "consumo interno eliminado"})
}

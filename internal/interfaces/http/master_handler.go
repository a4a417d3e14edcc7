package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/usecase"
)

// MasterHandler maneja las peticiones HTTP de los maestros (clientes,
// choferes, proveedores, operarios). Las cuatro rutas comparten la misma
// forma; cada grupo delega en los métodos del caso de uso correspondiente.
type MasterHandler struct {
	uc *usecase.MasterUseCase
}

// NewMasterHandler construye el handler.
func NewMasterHandler(uc *usecase.MasterUseCase) *MasterHandler {
	return &MasterHandler{uc: uc}
}

type masterOps struct {
	create func(c *fiber.Ctx, in dto.NameRequest) (*dto.MasterResponse, error)
	update func(c *fiber.Ctx, id string, in dto.NameRequest) (*dto.MasterResponse, error)
	list   func(c *fiber.Ctx) ([]*dto.MasterResponse, error)
	del    func(c *fiber.Ctx, id string) error
}

func (h *MasterHandler) register(group fiber.Router, ops masterOps) {
	group.Post("/", func(c *fiber.Ctx) error {
		var in dto.NameRequest
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		out, err := ops.create(c, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	})
	group.Get("/", func(c *fiber.Ctx) error {
		out, err := ops.list(c)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	})
	group.Put("/:id", func(c *fiber.Ctx) error {
		var in dto.NameRequest
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		out, err := ops.update(c, c.Params("id"), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	})
	group.Delete("/:id", func(c *fiber.Ctx) error {
		if err := ops.del(c, c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "eliminado"})
	})
}

// RegisterClients registra el CRUD de clientes en el grupo.
func (h *MasterHandler) RegisterClients(group fiber.Router) {
	h.register(group, masterOps{
		create: func(c *fiber.Ctx, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.CreateClient(c.Context(), userID(c), in)
		},
		update: func(c *fiber.Ctx, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.UpdateClient(c.Context(), id, in)
		},
		list: func(c *fiber.Ctx) ([]*dto.MasterResponse, error) { return h.uc.ListClients(c.Context()) },
		del:  func(c *fiber.Ctx, id string) error { return h.uc.DeleteClient(c.Context(), id) },
	})
}

// RegisterDrivers registra el CRUD de choferes en el grupo.
func (h *MasterHandler) RegisterDrivers(group fiber.Router) {
	h.register(group, masterOps{
		create: func(c *fiber.Ctx, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.CreateDriver(c.Context(), userID(c), in)
		},
		update: func(c *fiber.Ctx, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.UpdateDriver(c.Context(), id, in)
		},
		list: func(c *fiber.Ctx) ([]*dto.MasterResponse, error) { return h.uc.ListDrivers(c.Context()) },
		del:  func(c *fiber.Ctx, id string) error { return h.uc.DeleteDriver(c.Context(), id) },
	})
}

// RegisterSuppliers registra el CRUD de proveedores en el grupo.
func (h *MasterHandler) RegisterSuppliers(group fiber.Router) {
	h.register(group, masterOps{
		create: func(c *fiber.Ctx, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.CreateSupplier(c.Context(), userID(c), in)
		},
		update: func(c *fiber.Ctx, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.UpdateSupplier(c.Context(), id, in)
		},
		list: func(c *fiber.Ctx) ([]*dto.MasterResponse, error) { return h.uc.ListSuppliers(c.Context()) },
		del:  func(c *fiber.Ctx, id string) error { return h.uc.DeleteSupplier(c.Context(), id) },
	})
}

// RegisterOperators registra el CRUD de operarios en el grupo.
func (h *MasterHandler) RegisterOperators(group fiber.Router) {
	h.register(group, masterOps{
		create: func(c *fiber.Ctx, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.CreateOperator(c.Context(), userID(c), in)
		},
		update: func(c *fiber.Ctx, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
			return h.uc.UpdateOperator(c.Context(), id, in)
		},
		list: func(c *fiber.Ctx) ([]*dto.MasterResponse, error) { return h.uc.ListOperators(c.Context()) },
		del:  func(c *fiber.Ctx, id string) error { return h.uc.DeleteOperator(c.Context(), id) },
	})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bodegacl/bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	DispatchUC    *usecase.DispatchUseCase
	ReceiptUC     *usecase.ReceiptUseCase
	ProductionUC  *usecase.ProductionUseCase
	CreditNoteUC  *usecase.CreditNoteUseCase
	ConsumptionUC *usecase.InternalConsumptionUseCase
	MasterUC      *usecase.MasterUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Despachos (salida con chofer y máquina de entrega)
	dispatches := api.Group("/dispatches")
	dispatchHandler := NewDispatchHandler(deps.DispatchUC)
	dispatches.Post("/", dispatchHandler.Create)
	dispatches.Get("/", dispatchHandler.List)
	dispatches.Get("/mensual", dispatchHandler.MonthlyCounts)
	dispatches.Get("/:id", dispatchHandler.GetByID)
	dispatches.Put("/:id", dispatchHandler.Update)
	dispatches.Delete("/:id", dispatchHandler.Delete)
	dispatches.Patch("/:id/entregado-chofer", dispatchHandler.MarkDriverDelivered)
	dispatches.Patch("/:id/entregado-cliente", dispatchHandler.MarkClientDelivered)

	// Recepciones (entrada desde proveedor)
	receipts := api.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Put("/:id", receiptHandler.Update)
	receipts.Delete("/:id", receiptHandler.Delete)

	// Producciones (entrada de producto terminado)
	productions := api.Group("/productions")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	productions.Post("/", productionHandler.Create)
	productions.Get("/", productionHandler.List)
	productions.Get("/:id", productionHandler.GetByID)
	productions.Put("/:id", productionHandler.Update)
	productions.Delete("/:id", productionHandler.Delete)

	// Notas de crédito (reingreso por devolución)
	creditNotes := api.Group("/credit-notes")
	creditNoteHandler := NewCreditNoteHandler(deps.CreditNoteUC)
	creditNotes.Post("/", creditNoteHandler.Create)
	creditNotes.Get("/", creditNoteHandler.List)
	creditNotes.Get("/:id", creditNoteHandler.GetByID)
	creditNotes.Put("/:id", creditNoteHandler.Update)
	creditNotes.Delete("/:id", creditNoteHandler.Delete)

	// Consumos internos (salida sin cliente)
	consumptions := api.Group("/internal-consumptions")
	consumptionHandler := NewInternalConsumptionHandler(deps.ConsumptionUC)
	consumptions.Post("/", consumptionHandler.Create)
	consumptions.Get("/", consumptionHandler.List)
	consumptions.Get("/:id", consumptionHandler.GetByID)
	consumptions.Put("/:id", consumptionHandler.Update)
	consumptions.Delete("/:id", consumptionHandler.Delete)

	// Maestros
	masterHandler := NewMasterHandler(deps.MasterUC)
	masterHandler.RegisterClients(api.Group("/clients"))
	masterHandler.RegisterDrivers(api.Group("/drivers"))
	masterHandler.RegisterSuppliers(api.Group("/suppliers"))
	masterHandler.RegisterOperators(api.Group("/operators"))
}

package dto

// Requests y responses de los documentos de movimiento. Los nombres JSON
// conservan el contrato histórico de la API (campos en español).

// CreateDispatchRequest body para POST /api/dispatches.
type CreateDispatchRequest struct {
	Order         string `json:"orden"`
	Client        string `json:"cliente"`
	DriverID      string `json:"chofer"`
	PackageNumber string `json:"paquete_numero,omitempty"`
	InvoiceNumber string `json:"factura_numero,omitempty"`
	Lines         []Line `json:"productos"`
	Force         bool   `json:"force,omitempty"`
}

// UpdateDispatchRequest body para PUT /api/dispatches/:id. Campos vacíos no
// se tocan; Lines nil conserva las líneas actuales (nil ≠ lista vacía).
type UpdateDispatchRequest struct {
	Order         string  `json:"orden,omitempty"`
	Client        string  `json:"cliente,omitempty"`
	DriverID      string  `json:"chofer,omitempty"`
	PackageNumber *string `json:"paquete_numero,omitempty"`
	InvoiceNumber *string `json:"factura_numero,omitempty"`
	Status        string  `json:"status,omitempty"`
	Date          string  `json:"fecha,omitempty"` // ISO local
	Lines         []Line  `json:"productos,omitempty"`
}

// DispatchResponse representación de salida de un despacho con los maestros
// resueltos a nombre.
type DispatchResponse struct {
	ID              string `json:"id"`
	Order           string `json:"orden"`
	Client          string `json:"cliente"`
	Driver          string `json:"chofer"`
	CreatedBy       string `json:"created_by"`
	Date            string `json:"fecha"`
	Status          string `json:"status"`
	DeliveredDriver bool   `json:"delivered_driver"`
	DeliveredClient bool   `json:"delivered_client"`
	PackageNumber   string `json:"paquete_numero,omitempty"`
	InvoiceNumber   string `json:"factura_numero,omitempty"`
	Lines           []Line `json:"productos"`
}

// CreateReceiptRequest body para POST /api/receipts.
type CreateReceiptRequest struct {
	Order    string `json:"orden"`
	Supplier string `json:"supplier"`
	Lines    []Line `json:"productos"`
	Force    bool   `json:"force,omitempty"`
}

// UpdateReceiptRequest body para PUT /api/receipts/:id. Orden, proveedor y
// líneas son obligatorios: la actualización reemplaza el documento completo.
type UpdateReceiptRequest struct {
	Order    string `json:"orden"`
	Supplier string `json:"supplier"`
	Status   string `json:"status,omitempty"`
	Lines    []Line `json:"productos"`
}

// ReceiptResponse representación de salida de una recepción.
type ReceiptResponse struct {
	ID        string `json:"id"`
	Order     string `json:"orden"`
	Supplier  string `json:"supplier"`
	CreatedBy string `json:"created_by"`
	Date      string `json:"fecha"`
	Status    string `json:"status"`
	Lines     []Line `json:"productos"`
}

// CreateProductionRequest body para POST /api/productions.
type CreateProductionRequest struct {
	Operator string `json:"operator"`
	Lines    []Line `json:"productos"`
}

// UpdateProductionRequest body para PUT /api/productions/:id.
type UpdateProductionRequest struct {
	Operator string `json:"operator"`
	Lines    []Line `json:"productos"`
}

// ProductionResponse representación de salida de una producción.
type ProductionResponse struct {
	ID        string `json:"id"`
	Operator  string `json:"operator"`
	CreatedBy string `json:"created_by"`
	Date      string `json:"fecha"`
	Lines     []Line `json:"productos"`
}

// CreateCreditNoteRequest body para POST /api/credit-notes.
type CreateCreditNoteRequest struct {
	Client           string `json:"client"`
	OrderNumber      string `json:"order_number"`
	InvoiceNumber    string `json:"invoice_number"`
	CreditNoteNumber string `json:"credit_note_number"`
	Reason           string `json:"reason"`
	Lines            []Line `json:"productos"`
}

// UpdateCreditNoteRequest body para PUT /api/credit-notes/:id. Todos los
// campos son obligatorios, igual que en la creación.
type UpdateCreditNoteRequest = CreateCreditNoteRequest

// CreditNoteResponse representación de salida de una nota de crédito.
type CreditNoteResponse struct {
	ID               string `json:"id"`
	Client           string `json:"client"`
	OrderNumber      string `json:"order_number"`
	InvoiceNumber    string `json:"invoice_number"`
	CreditNoteNumber string `json:"credit_note_number"`
	Reason           string `json:"reason"`
	CreatedBy        string `json:"created_by"`
	Date             string `json:"fecha"`
	Lines            []Line `json:"productos"`
}

// CreateInternalConsumptionRequest body para POST /api/internal-consumptions.
type CreateInternalConsumptionRequest struct {
	WithdrawnBy string `json:"nombre_retira"`
	Area        string `json:"area"`
	Reason      string `json:"motivo"`
	Lines       []Line `json:"productos"`
}

// UpdateInternalConsumptionRequest body para PUT /api/internal-consumptions/:id.
// Campos vacíos no se tocan; Lines nil conserva las líneas actuales.
type UpdateInternalConsumptionRequest struct {
	WithdrawnBy string `json:"nombre_retira,omitempty"`
	Area        string `json:"area,omitempty"`
	Reason      string `json:"motivo,omitempty"`
	Lines       []Line `json:"productos,omitempty"`
}

// InternalConsumptionResponse representación de salida de un consumo interno.
type InternalConsumptionResponse struct {
	ID          string `json:"id"`
	WithdrawnBy string `json:"nombre_retira"`
	Area        string `json:"area"`
	Reason      string `json:"motivo"`
	CreatedBy   string `json:"created_by"`
	Date        string `json:"fecha"`
	Lines       []Line `json:"productos"`
}

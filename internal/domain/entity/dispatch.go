package entity

import (
	"time"

	"github.com/bodegacl/bodega-api/internal/domain"
)

// Estados de un despacho. La entrega avanza pendiente → entregado_chofer →
// entregado_cliente; una vez entregado a cliente no hay regresiones.
const (
	DispatchStatusPending         = "pendiente"
	DispatchStatusCanceled        = "cancelado"
	DispatchStatusDriverDelivered = "entregado_chofer"
	DispatchStatusClientDelivered = "entregado_cliente"
)

// Dispatch despacho de mercadería a un cliente (salida de stock).
type Dispatch struct {
	ID                string
	Order             string // número de orden de compra
	ClientID          string
	DriverID          string
	PackageNumber     string // opcional
	InvoiceNumber     string // opcional
	Date              time.Time
	Status            string
	DeliveredDriver   bool
	DeliveredDriverAt *time.Time
	DeliveredClient   bool
	DeliveredClientAt *time.Time
	CreatedBy         string
	Lines             []LineItem
}

// DerivedStatus estado efectivo: los flags de entrega mandan sobre Status.
func (d *Dispatch) DerivedStatus() string {
	switch {
	case d.DeliveredClient:
		return DispatchStatusClientDelivered
	case d.DeliveredDriver:
		return DispatchStatusDriverDelivered
	case d.Status != "":
		return d.Status
	default:
		return DispatchStatusPending
	}
}

// MarkDriverDelivered marca la entrega al chofer. Falla si ya fue entregado
// al cliente (estado terminal de entrega); es idempotente en otro caso.
func (d *Dispatch) MarkDriverDelivered(now time.Time) error {
	if d.DeliveredClient {
		return domain.ErrConflict
	}
	if !d.DeliveredDriver {
		d.DeliveredDriver = true
		d.DeliveredDriverAt = &now
		d.Status = DispatchStatusDriverDelivered
	}
	return nil
}

// MarkClientDelivered marca la entrega al cliente. Implica la entrega al
// chofer si aún no estaba marcada. Idempotente.
func (d *Dispatch) MarkClientDelivered(now time.Time) {
	if d.DeliveredClient {
		return
	}
	d.DeliveredClient = true
	d.DeliveredClientAt = &now
	d.Status = DispatchStatusClientDelivered
	if !d.DeliveredDriver {
		d.DeliveredDriver = true
		d.DeliveredDriverAt = &now
	}
}

// ApplyStatus aplica una transición de estado solicitada por el caller.
// Una vez entregado a cliente se ignora cualquier cambio; pendiente y
// cancelado solo son válidos si no hubo ninguna entrega.
func (d *Dispatch) ApplyStatus(status string, now time.Time) {
	if d.DeliveredClient {
		return
	}
	switch status {
	case DispatchStatusClientDelivered:
		d.MarkClientDelivered(now)
	case DispatchStatusDriverDelivered:
		_ = d.MarkDriverDelivered(now)
	case DispatchStatusPending, DispatchStatusCanceled:
		if !d.DeliveredDriver && !d.DeliveredClient {
			d.Status = status
		}
	}
}

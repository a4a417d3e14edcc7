package entity

import "time"

// Client cliente destinatario de despachos y notas de crédito.
// Se resuelve por nombre normalizado y se crea implícitamente si no existe.
type Client struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

// Driver chofer asignado a despachos. A diferencia de los otros maestros,
// se referencia por ID y nunca se crea implícitamente.
type Driver struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

// Supplier proveedor de recepciones.
type Supplier struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

// Operator operario responsable de producciones.
type Operator struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

package stock

// Kind identifica el tipo de documento de movimiento que alimenta el
// contador de stock.
type Kind string

const (
	KindDispatch            Kind = "dispatch"
	KindReceipt             Kind = "receipt"
	KindProduction          Kind = "production"
	KindCreditNote          Kind = "credit_note"
	KindInternalConsumption Kind = "internal_consumption"
)

// Policy política de stock negativo por tipo de documento: al aplicar una
// disminución, ClampToZero trunca el resultado a 0 y AllowNegative lo deja
// pasar tal cual.
type Policy int

const (
	AllowNegative Policy = iota
	ClampToZero
)

// Sign convención de signo fija por tipo: +1 entradas (recepción, producción,
// nota de crédito), -1 salidas (despacho, consumo interno).
func (k Kind) Sign() int64 {
	switch k {
	case KindReceipt, KindProduction, KindCreditNote:
		return 1
	case KindDispatch, KindInternalConsumption:
		return -1
	}
	return 0
}

// StockPolicy resuelve la política de stock negativo una sola vez por tipo.
// Las entradas truncan a 0 al revertirse; las salidas admiten stock negativo.
func (k Kind) StockPolicy() Policy {
	switch k {
	case KindReceipt, KindProduction, KindCreditNote:
		return ClampToZero
	}
	return AllowNegative
}

// OrderNumbered indica si el tipo lleva número de orden y por lo tanto pasa
// por la guarda de órdenes duplicadas al crearse.
func (k Kind) OrderNumbered() bool {
	return k == KindDispatch || k == KindReceipt
}

package dto

import "github.com/shopspring/decimal"

// NameRequest body de creación/actualización de maestros resueltos por nombre
// (clientes, choferes, proveedores, operarios).
type NameRequest struct {
	Name string `json:"name"`
}

// MasterResponse representación de salida de un maestro.
type MasterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
}

// CreateProductRequest body para POST /api/products (gestión directa del
// catálogo, distinta de la creación implícita del motor de stock).
type CreateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ProductResponse representación de salida de un producto con su stock.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Stock     decimal.Decimal `json:"stock"`
	CreatedBy string          `json:"created_by"`
}

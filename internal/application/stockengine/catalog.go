package stockengine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/repository"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
)

// Catalog resuelve nombres libres de producto a su registro canónico.
// Dos llamadas con nombres que difieren solo en mayúsculas o espacios
// resuelven al mismo producto.
type Catalog struct{}

// ResolveOrCreate normaliza el nombre, busca el producto de forma insensible
// a mayúsculas y lo crea con stock cero si no existe. Nunca muta stock.
func (Catalog) ResolveOrCreate(products repository.ProductRepository, rawName, category, createdBy string) (*entity.Product, error) {
	name := stock.Normalize(rawName)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de producto vacío", domain.ErrInvalidInput)
	}

	p, err := products.GetByName(name)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if category == "" {
		category = entity.CategoryDefault
	}
	now := time.Now().UTC()
	p = &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Stock:     decimal.Zero,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ResolveLines garantiza que todo nombre de producto referenciado por las
// líneas exista en el catálogo antes de aplicar stock. Se invoca siempre
// antes del cálculo de deltas y de la aplicación de stock.
func (c Catalog) ResolveLines(products repository.ProductRepository, lines []entity.LineItem, createdBy string) error {
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		k := stock.Key(l.Name)
		if seen[k] {
			continue
		}
		seen[k] = true
		if _, err := c.ResolveOrCreate(products, l.Name, "", createdBy); err != nil {
			return err
		}
	}
	return nil
}

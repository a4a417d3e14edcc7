package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bodegacl/bodega-api/internal/application/dto"
	"github.com/bodegacl/bodega-api/internal/application/stockengine"
	"github.com/bodegacl/bodega-api/internal/domain"
	"github.com/bodegacl/bodega-api/internal/domain/entity"
	"github.com/bodegacl/bodega-api/internal/domain/stock"
	"github.com/bodegacl/bodega-api/pkg/logger"
)

// ProductUseCase gestión directa del catálogo de productos. El alta implícita
// desde documentos de movimiento vive en el motor de stock; aquí está el CRUD
// explícito del catálogo.
type ProductUseCase struct {
	tx  stockengine.TxRunner
	log *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx stockengine.TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{tx: tx, log: log}
}

// Create agrega un producto al catálogo con stock inicial cero. El nombre se
// normaliza y debe ser único (insensible a mayúsculas).
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := stock.Normalize(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de producto vacío", domain.ErrInvalidInput)
	}
	category := stock.Normalize(in.Category)
	if category == "" {
		category = entity.CategoryDefault
	}

	var resp *dto.ProductResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		existing, err := r.Products.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: producto %q", domain.ErrDuplicate, name)
		}

		now := time.Now().UTC()
		p := &entity.Product{
			ID:        uuid.New().String(),
			Name:      name,
			Category:  category,
			Stock:     decimal.Zero,
			CreatedBy: userID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Products.Create(p); err != nil {
			return err
		}
		resp = productResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("producto", name).Str("usuario", userID).Msg("producto creado")
	return resp, nil
}

// Update renombra o recategoriza un producto. El stock no se toca: solo los
// documentos de movimiento lo modifican.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var resp *dto.ProductResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		p, err := r.Products.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}

		if name := stock.Normalize(in.Name); name != "" && stock.Key(name) != stock.Key(p.Name) {
			existing, err := r.Products.GetByName(name)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != p.ID {
				return fmt.Errorf("%w: producto %q", domain.ErrDuplicate, name)
			}
			p.Name = name
		}
		if category := stock.Normalize(in.Category); category != "" {
			p.Category = category
		}
		p.UpdatedAt = time.Now().UTC()

		if err := r.Products.Update(p); err != nil {
			return err
		}
		resp = productResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get detalle de un producto con su stock actual.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var resp *dto.ProductResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		p, err := r.Products.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		resp = productResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List catálogo paginado con stock vigente.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	limit, offset := page.DefaultPage()

	var out []*dto.ProductResponse
	err := uc.tx.Run(ctx, func(r stockengine.Repos) error {
		list, err := r.Products.List(limit, offset)
		if err != nil {
			return err
		}
		out = make([]*dto.ProductResponse, 0, len(list))
		for _, p := range list {
			out = append(out, productResponse(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto del catálogo. Los documentos históricos
// conservan sus líneas por nombre, por lo que no hay guardia referencial.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r stockengine.Repos) error {
		p, err := r.Products.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		return r.Products.Delete(p.ID)
	})
}

func productResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		CreatedBy: p.CreatedBy,
	}
}

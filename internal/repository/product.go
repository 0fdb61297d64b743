package repository

import (
	"context"
	"fmt"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/repository/dao"
)

var ErrProductNotFound = dao.ErrProductNotFound

type ProductDAO interface {
	FindAll(ctx context.Context) ([]dao.Product, error)
	FindByID(ctx context.Context, id string) (dao.Product, error)
	Upsert(ctx context.Context, products []dao.Product) error
	Count(ctx context.Context) (int64, error)
}

type ProductRepository struct {
	dao ProductDAO
}

func NewProductRepository(dao ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: dao,
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	products := make([]domain.Product, 0, len(found))
	for _, p := range found {
		products = append(products, r.daoToDomain(p))
	}

	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// Upsert stores products, keeping their order as the display order.
func (r *ProductRepository) Upsert(ctx context.Context, products []domain.Product) error {
	rows := make([]dao.Product, 0, len(products))
	for i, p := range products {
		rows = append(rows, r.domainToDAO(p, i))
	}

	if err := r.dao.Upsert(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return n, nil
}

func (r *ProductRepository) daoToDomain(p dao.Product) domain.Product {
	specs := make([]domain.Specification, 0, len(p.Specifications))
	for _, s := range p.Specifications {
		specs = append(specs, domain.Specification{Name: s.Name, Value: s.Value})
	}
	if len(specs) == 0 {
		specs = nil
	}

	return domain.Product{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Category:       domain.Category{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug},
		Type:           domain.ProductType{ID: p.Type.ID, Name: p.Type.Name, Slug: p.Type.Slug},
		InStock:        p.InStock,
		StockQuantity:  p.StockQuantity,
		Images:         p.Images,
		Specifications: specs,
		Sizes:          p.Sizes,
		Colors:         p.Colors,
	}
}

func (r *ProductRepository) domainToDAO(p domain.Product, position int) dao.Product {
	specs := make([]dao.Specification, 0, len(p.Specifications))
	for _, s := range p.Specifications {
		specs = append(specs, dao.Specification{Name: s.Name, Value: s.Value})
	}

	return dao.Product{
		ID:             p.ID,
		Position:       position,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		CategoryID:     p.Category.ID,
		Category:       dao.Category{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug},
		TypeID:         p.Type.ID,
		Type:           dao.ProductType{ID: p.Type.ID, Name: p.Type.Name, Slug: p.Type.Slug},
		InStock:        p.InStock,
		StockQuantity:  p.StockQuantity,
		Images:         p.Images,
		Specifications: specs,
		Sizes:          p.Sizes,
		Colors:         p.Colors,
	}
}

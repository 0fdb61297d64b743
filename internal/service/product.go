package service

import (
	"context"
	"fmt"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/query"
	"github.com/kravdojo/gym-api/internal/repository"
)

var ErrProductNotFound = repository.ErrProductNotFound

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	Upsert(ctx context.Context, products []domain.Product) error
	Count(ctx context.Context) (int64, error)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

func (s *ProductService) ListProducts(ctx context.Context, q string, f domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return query.Products(products, q, f), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *ProductService) Facets(ctx context.Context) (query.Facets, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return query.Facets{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return query.FacetsOf(products), nil
}

// SeedCatalog stores products when the catalog is empty. It reports whether
// anything was written.
func (s *ProductService) SeedCatalog(ctx context.Context, products []domain.Product) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("s.repo.Count -> %w", err)
	}
	if n > 0 {
		return false, nil
	}

	if err := s.repo.Upsert(ctx, products); err != nil {
		return false, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return true, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/purchase"
)

type PurchaseIntentRepository interface {
	Create(ctx context.Context, intent domain.PurchaseIntent) (domain.PurchaseIntent, error)
	FindAll(ctx context.Context) ([]domain.PurchaseIntent, error)
	FindByStudentID(ctx context.Context, studentID string) ([]domain.PurchaseIntent, error)
}

type ProductFinder interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// IntentListener is told about every intent once it is stored.
type IntentListener func(domain.PurchaseIntent)

type PurchaseService struct {
	repo     PurchaseIntentRepository
	products ProductFinder
	listener IntentListener
	newID    func() string
	now      func() time.Time
}

func NewPurchaseService(repo PurchaseIntentRepository, products ProductFinder, listener IntentListener) *PurchaseService {
	return &PurchaseService{
		repo:     repo,
		products: products,
		listener: listener,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// RequestPurchase checks the selection against the product and stores a
// pending intent.
func (s *PurchaseService) RequestPurchase(ctx context.Context, req purchase.Request) (domain.PurchaseIntent, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return domain.PurchaseIntent{}, fmt.Errorf("s.products.FindByID -> %w", err)
	}
	if err := purchase.CheckSelection(product, req.Size, req.Color); err != nil {
		return domain.PurchaseIntent{}, err
	}
	if req.Quantity < 1 {
		return domain.PurchaseIntent{}, purchase.ErrInvalidQuantity
	}

	intent, err := s.repo.Create(ctx, purchase.NewIntent(req, s.newID(), s.now()))
	if err != nil {
		return domain.PurchaseIntent{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if s.listener != nil {
		s.listener(intent)
	}

	return intent, nil
}

func (s *PurchaseService) ListIntents(ctx context.Context) ([]domain.PurchaseIntent, error) {
	intents, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return intents, nil
}

func (s *PurchaseService) ListIntentsForStudent(ctx context.Context, studentID string) ([]domain.PurchaseIntent, error) {
	intents, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStudentID -> %w", err)
	}

	return intents, nil
}

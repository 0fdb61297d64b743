package repository

import (
	"context"
	"fmt"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/repository/dao"
)

type PurchaseIntentDAO interface {
	Insert(ctx context.Context, intent dao.PurchaseIntent) (dao.PurchaseIntent, error)
	FindAll(ctx context.Context) ([]dao.PurchaseIntent, error)
	FindByStudentID(ctx context.Context, studentID string) ([]dao.PurchaseIntent, error)
}

type PurchaseIntentRepository struct {
	dao PurchaseIntentDAO
}

func NewPurchaseIntentRepository(dao PurchaseIntentDAO) *PurchaseIntentRepository {
	return &PurchaseIntentRepository{
		dao: dao,
	}
}

func (r *PurchaseIntentRepository) Create(ctx context.Context, intent domain.PurchaseIntent) (domain.PurchaseIntent, error) {
	created, err := r.dao.Insert(ctx, dao.PurchaseIntent{
		ID:        intent.ID,
		StudentID: intent.StudentID,
		ProductID: intent.ProductID,
		Quantity:  intent.Quantity,
		Size:      intent.Size,
		Color:     intent.Color,
		Notes:     intent.Notes,
		Status:    string(intent.Status),
		CreatedAt: intent.CreatedAt,
	})
	if err != nil {
		return domain.PurchaseIntent{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PurchaseIntentRepository) FindAll(ctx context.Context) ([]domain.PurchaseIntent, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *PurchaseIntentRepository) FindByStudentID(ctx context.Context, studentID string) ([]domain.PurchaseIntent, error) {
	found, err := r.dao.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStudentID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *PurchaseIntentRepository) daosToDomain(found []dao.PurchaseIntent) []domain.PurchaseIntent {
	intents := make([]domain.PurchaseIntent, 0, len(found))
	for _, i := range found {
		intents = append(intents, r.daoToDomain(i))
	}
	return intents
}

func (r *PurchaseIntentRepository) daoToDomain(i dao.PurchaseIntent) domain.PurchaseIntent {
	return domain.PurchaseIntent{
		ID:        i.ID,
		StudentID: i.StudentID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Size:      i.Size,
		Color:     i.Color,
		Notes:     i.Notes,
		CreatedAt: i.CreatedAt,
		Status:    domain.PurchaseStatus(i.Status),
	}
}

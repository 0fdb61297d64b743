package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type PurchaseIntent struct {
	ID        string `gorm:"primaryKey;size:36"`
	StudentID string `gorm:"not null;index"`
	ProductID string `gorm:"not null;index"`
	Quantity  int    `gorm:"not null"`
	Size      string
	Color     string
	Notes     string
	Status    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

type PurchaseIntentDAO struct {
	db *gorm.DB
}

func NewPurchaseIntentDAO(db *gorm.DB) *PurchaseIntentDAO {
	return &PurchaseIntentDAO{
		db: db,
	}
}

func (d *PurchaseIntentDAO) Insert(ctx context.Context, intent PurchaseIntent) (PurchaseIntent, error) {
	if err := d.db.WithContext(ctx).Create(&intent).Error; err != nil {
		return PurchaseIntent{}, err
	}

	return intent, nil
}

func (d *PurchaseIntentDAO) FindAll(ctx context.Context) ([]PurchaseIntent, error) {
	var intents []PurchaseIntent
	if err := d.db.WithContext(ctx).Order("created_at, id").Find(&intents).Error; err != nil {
		return nil, err
	}

	return intents, nil
}

func (d *PurchaseIntentDAO) FindByStudentID(ctx context.Context, studentID string) ([]PurchaseIntent, error) {
	var intents []PurchaseIntent
	result := d.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at, id").
		Find(&intents)
	if result.Error != nil {
		return nil, result.Error
	}

	return intents, nil
}

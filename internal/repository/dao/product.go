package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProductNotFound = errors.New("product not found")

type Category struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`
}

func (Category) TableName() string {
	return "product_categories"
}

type ProductType struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`
}

func (ProductType) TableName() string {
	return "product_types"
}

type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Product struct {
	ID       string `gorm:"primaryKey"`
	Position int    `gorm:"not null;index"`

	Name        string  `gorm:"not null"`
	Description string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`

	CategoryID string `gorm:"not null;index"`
	Category   Category
	TypeID     string `gorm:"not null;index"`
	Type       ProductType

	InStock       bool `gorm:"not null"`
	StockQuantity int  `gorm:"not null"`

	Images         []string        `gorm:"serializer:json"`
	Specifications []Specification `gorm:"serializer:json"`
	Sizes          []string        `gorm:"serializer:json"`
	Colors         []string        `gorm:"serializer:json"`
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

// FindAll returns the catalog in display order.
func (d *ProductDAO) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).
		Preload("Category").
		Preload("Type").
		Order("position, id").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id string) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).
		Preload("Category").
		Preload("Type").
		First(&product, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

// Upsert writes products together with their categories and types,
// overwriting rows that already exist.
func (d *ProductDAO) Upsert(ctx context.Context, products []Product) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range products {
			p := products[i]
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&p.Category).Error; err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&p.Type).Error; err != nil {
				return err
			}
			p.CategoryID = p.Category.ID
			p.TypeID = p.Type.ID
			if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *ProductDAO) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&Product{}).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

package request

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/kravdojo/gym-api/internal/domain"
)

// ProductQuery is bound from the query string of GET /products.
type ProductQuery struct {
	Q        string   `form:"q"`
	Category string   `form:"category"`
	Type     string   `form:"type"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	InStock  *bool    `form:"in_stock"`
}

// Filter converts the query into a product filter. A price range needs both
// bounds; a lone min_price or max_price is dropped. Inverted ranges are passed
// through and the query engine ignores them.
func (req *ProductQuery) Filter() domain.ProductFilter {
	f := domain.ProductFilter{
		Category: req.Category,
		Type:     req.Type,
		InStock:  req.InStock,
	}
	if req.MinPrice != nil && req.MaxPrice != nil {
		f.PriceRange = &domain.PriceRange{Min: *req.MinPrice, Max: *req.MaxPrice}
	}
	return f
}

type PurchaseIntentRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Notes     string `json:"notes"`
}

func (req *PurchaseIntentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1), validation.Max(math.MaxInt32)),
		validation.Field(&req.Notes, validation.Length(0, 500)),
	)
}

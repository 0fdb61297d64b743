package query

import "github.com/kravdojo/gym-api/internal/domain"

// PriceBand is a preset price range offered as a filter chip.
type PriceBand struct {
	Label string            `json:"label"`
	Range domain.PriceRange `json:"range"`
}

var PriceBands = []PriceBand{
	{Label: "Até R$ 50", Range: domain.PriceRange{Min: 0, Max: 50}},
	{Label: "R$ 50 - R$ 100", Range: domain.PriceRange{Min: 50, Max: 100}},
	{Label: "R$ 100 - R$ 200", Range: domain.PriceRange{Min: 100, Max: 200}},
	{Label: "Acima de R$ 200", Range: domain.PriceRange{Min: 200, Max: 999999}},
}

type Facets struct {
	Categories []domain.Category    `json:"categories"`
	Types      []domain.ProductType `json:"types"`
	PriceRange *domain.PriceRange   `json:"priceRange,omitempty"`
	InStock    int                  `json:"inStock"`
	OutOfStock int                  `json:"outOfStock"`
	PriceBands []PriceBand          `json:"priceBands"`
}

// FacetsOf summarizes products for building filter controls. Categories and
// types are listed once each, in the order they first appear.
func FacetsOf(products []domain.Product) Facets {
	facets := Facets{
		Categories: []domain.Category{},
		Types:      []domain.ProductType{},
		PriceBands: PriceBands,
	}
	seenCategory := map[string]bool{}
	seenType := map[string]bool{}

	for _, p := range products {
		if !seenCategory[p.Category.Slug] {
			seenCategory[p.Category.Slug] = true
			facets.Categories = append(facets.Categories, p.Category)
		}
		if !seenType[p.Type.Slug] {
			seenType[p.Type.Slug] = true
			facets.Types = append(facets.Types, p.Type)
		}

		if facets.PriceRange == nil {
			facets.PriceRange = &domain.PriceRange{Min: p.Price, Max: p.Price}
		} else {
			facets.PriceRange.Min = min(facets.PriceRange.Min, p.Price)
			facets.PriceRange.Max = max(facets.PriceRange.Max, p.Price)
		}

		if p.InStock {
			facets.InStock++
		} else {
			facets.OutOfStock++
		}
	}

	return facets
}

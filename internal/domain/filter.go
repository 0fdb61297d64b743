package domain

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductFilter holds the structured predicates of a product search.
// An empty slug or a nil pointer leaves that axis unconstrained.
type ProductFilter struct {
	Category   string      `json:"category,omitempty"`
	Type       string      `json:"type,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	InStock    *bool       `json:"inStock,omitempty"`
}

func (f ProductFilter) Active() bool {
	return f.Category != "" || f.Type != "" || f.PriceRange != nil || f.InStock != nil
}

// Clone returns a copy that shares no pointers with f.
func (f ProductFilter) Clone() ProductFilter {
	if f.PriceRange != nil {
		r := *f.PriceRange
		f.PriceRange = &r
	}
	if f.InStock != nil {
		v := *f.InStock
		f.InStock = &v
	}
	return f
}

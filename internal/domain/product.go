package domain

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product is a catalog item. InStock=false usually comes with StockQuantity=0,
// but nothing enforces it.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Category       Category        `json:"category"`
	Type           ProductType     `json:"type"`
	InStock        bool            `json:"inStock"`
	StockQuantity  int             `json:"stockQuantity"`
	Images         []string        `json:"images"`
	Specifications []Specification `json:"specifications,omitempty"`
	Sizes          []string        `json:"sizes,omitempty"`
	Colors         []string        `json:"colors,omitempty"`
}

func (p Product) SearchFields() []string {
	return []string{p.Name, p.Description, p.Category.Name}
}

func (p Product) Key() string {
	return p.ID
}

func (p Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

func (p Product) HasColors() bool {
	return len(p.Colors) > 0
}

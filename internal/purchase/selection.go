package purchase

import (
	"errors"

	"github.com/kravdojo/gym-api/internal/domain"
)

var (
	ErrSizeRequired    = errors.New("a size must be selected")
	ErrColorRequired   = errors.New("a color must be selected")
	ErrInvalidSize     = errors.New("size is not offered for this product")
	ErrInvalidColor    = errors.New("color is not offered for this product")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrUnknownProduct  = errors.New("unknown product")
)

// CheckSelection enforces the choices a product requires before it can be
// requested: a size when it has sizes, a colour when it has colours.
func CheckSelection(p domain.Product, size, color string) error {
	if p.HasSizes() {
		if size == "" {
			return ErrSizeRequired
		}
		if !contains(p.Sizes, size) {
			return ErrInvalidSize
		}
	}
	if p.HasColors() {
		if color == "" {
			return ErrColorRequired
		}
		if !contains(p.Colors, color) {
			return ErrInvalidColor
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// Package query derives filtered views over in-memory collections.
//
// Every function here is pure: the input slice is never modified and the
// result keeps the relative order of the source.
package query

import (
	"math"
	"strings"

	"github.com/kravdojo/gym-api/internal/domain"
)

// Searchable exposes the fields free-text search looks at.
type Searchable interface {
	SearchFields() []string
}

// Matches reports whether any field contains q, ignoring case. A blank q
// matches everything.
func Matches(fields []string, q string) bool {
	if strings.TrimSpace(q) == "" {
		return true
	}
	needle := strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Search keeps the items whose searchable fields match q.
func Search[T Searchable](items []T, q string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item.SearchFields(), q) {
			out = append(out, item)
		}
	}
	return out
}

func Students(students []domain.Student, q string) []domain.Student {
	return Search(students, q)
}

func Users(users []domain.User, q string) []domain.User {
	return Search(users, q)
}

// Products applies the text stage and then every active predicate of f.
func Products(products []domain.Product, q string, f domain.ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if Matches(p.SearchFields(), q) && Accepts(f, p) {
			out = append(out, p)
		}
	}
	return out
}

// Accepts evaluates the structured predicates of f against p.
func Accepts(f domain.ProductFilter, p domain.Product) bool {
	if f.Category != "" && p.Category.Slug != f.Category {
		return false
	}
	if f.Type != "" && p.Type.Slug != f.Type {
		return false
	}
	if r := f.PriceRange; r != nil && wellFormed(*r) {
		if p.Price < r.Min || p.Price > r.Max {
			return false
		}
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// wellFormed rejects ranges that cannot describe an interval. Those are
// ignored rather than filtering everything out.
func wellFormed(r domain.PriceRange) bool {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return false
	}
	return r.Min <= r.Max
}

package query

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kravdojo/gym-api/internal/catalog"
	"github.com/kravdojo/gym-api/internal/domain"
)

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

func TestProductsEmptyQueryAndFilterReturnsEverything(t *testing.T) {
	all := catalog.Products()

	got := Products(all, "", domain.ProductFilter{})
	assert.Equal(t, all, got)

	got = Products(all, "   \t", domain.ProductFilter{})
	assert.Equal(t, all, got)
}

func TestProductsTextSearchIsCaseInsensitive(t *testing.T) {
	all := catalog.Products()

	lower := Products(all, "krav", domain.ProductFilter{})
	upper := Products(all, "KRAV", domain.ProductFilter{})

	assert.Equal(t, []string{"1", "2", "5"}, ids(lower))
	assert.Equal(t, ids(lower), ids(upper))
}

func TestProductsTextSearchCoversCategoryName(t *testing.T) {
	got := Products(catalog.Products(), "ACESSÓRIOS", domain.ProductFilter{})
	assert.Equal(t, []string{"7"}, ids(got))
}

func TestProductsPriceRangeIsInclusive(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Price: 24.90},
		{ID: "b", Price: 89.90},
		{ID: "c", Price: 129.90},
		{ID: "d", Price: 299.90},
	}

	got := Products(products, "", domain.ProductFilter{PriceRange: &domain.PriceRange{Min: 50, Max: 100}})
	assert.Equal(t, []string{"b"}, ids(got))

	got = Products(products, "", domain.ProductFilter{PriceRange: &domain.PriceRange{Min: 24.90, Max: 129.90}})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestProductsStructuredPredicatesAreConjunctive(t *testing.T) {
	all := catalog.Products()

	tests := []struct {
		name   string
		query  string
		filter domain.ProductFilter
		want   []string
	}{
		{name: "category", filter: domain.ProductFilter{Category: "equipamentos"}, want: []string{"2", "3", "8"}},
		{name: "type", filter: domain.ProductFilter{Type: "vestuario"}, want: []string{"1", "4"}},
		{name: "category and type", filter: domain.ProductFilter{Category: "equipamentos", Type: "protecao"}, want: []string{"2", "3"}},
		{name: "out of stock", filter: domain.ProductFilter{InStock: boolPtr(false)}, want: []string{"6"}},
		{name: "query and price", query: "krav", filter: domain.ProductFilter{PriceRange: &domain.PriceRange{Min: 0, Max: 100}}, want: []string{"1", "5"}},
		{name: "unknown slug", filter: domain.ProductFilter{Category: "nope"}, want: []string{}},
		{
			name:   "everything",
			query:  "kimono",
			filter: domain.ProductFilter{Category: "uniformes", Type: "vestuario", PriceRange: &domain.PriceRange{Min: 50, Max: 100}, InStock: boolPtr(true)},
			want:   []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Products(all, tt.query, tt.filter)))
		})
	}
}

func TestProductsMalformedRangeIsIgnored(t *testing.T) {
	all := catalog.Products()

	inverted := Products(all, "", domain.ProductFilter{PriceRange: &domain.PriceRange{Min: 100, Max: 50}})
	assert.Equal(t, all, inverted)

	nan := Products(all, "", domain.ProductFilter{PriceRange: &domain.PriceRange{Min: math.NaN(), Max: 100}})
	assert.Equal(t, all, nan)
}

func TestProductsDoesNotMutateInput(t *testing.T) {
	all := catalog.Products()
	snapshot := catalog.Products()

	got := Products(all, "protetor", domain.ProductFilter{InStock: boolPtr(true)})
	require.Len(t, got, 1)
	got[0].Name = "changed"

	assert.Equal(t, snapshot, all)
}

func TestStudentsSearchesNameEmailAndRank(t *testing.T) {
	students := catalog.Students(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))

	byRank := Students(students, "faixa azul")
	require.Len(t, byRank, 1)
	assert.Equal(t, "Ana Costa", byRank[0].Name)

	byEmail := Students(students, "carlos@")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "3", byEmail[0].ID)

	assert.Len(t, Students(students, "email.com"), 4)
	assert.Empty(t, Students(students, "zzz"))
}

func TestUsersSearchesNameAndEmail(t *testing.T) {
	users := []domain.User{
		{ID: "1", Name: "Bruno", Email: "bruno@dojo.com", Belt: "Faixa Preta"},
		{ID: "2", Name: "Clara", Email: "clara@dojo.com"},
	}

	assert.Len(t, Users(users, "DOJO"), 2)
	assert.Equal(t, users[1:], Users(users, "clara"))
	// belts are not searchable for users
	assert.Empty(t, Users(users, "preta"))
}

func TestBlankQueryMatchesEveryEntity(t *testing.T) {
	products := catalog.Products()
	students := catalog.Students(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))
	users := []domain.User{
		{ID: "1", Name: "Bruno", Email: "bruno@dojo.com"},
		{ID: "2", Name: "Clara", Email: "clara@dojo.com"},
	}

	for _, q := range []string{"", " ", "   ", "\t", "  \t", " \t\n "} {
		assert.Equal(t, products, Products(products, q, domain.ProductFilter{}), "%q", q)
		assert.Equal(t, students, Students(students, q), "%q", q)
		assert.Equal(t, users, Users(users, q), "%q", q)
	}
}

func TestFacetsOf(t *testing.T) {
	facets := FacetsOf(catalog.Products())

	assert.Len(t, facets.Categories, 5)
	assert.Equal(t, "uniformes", facets.Categories[0].Slug)
	assert.Equal(t, "equipamentos", facets.Categories[1].Slug)
	assert.Len(t, facets.Types, 5)
	require.NotNil(t, facets.PriceRange)
	assert.InDelta(t, 19.9, facets.PriceRange.Min, 1e-9)
	assert.InDelta(t, 299.9, facets.PriceRange.Max, 1e-9)
	assert.Equal(t, 7, facets.InStock)
	assert.Equal(t, 1, facets.OutOfStock)
	assert.Len(t, facets.PriceBands, 4)

	empty := FacetsOf(nil)
	assert.Nil(t, empty.PriceRange)
	assert.Empty(t, empty.Categories)
}

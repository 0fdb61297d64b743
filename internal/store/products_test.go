package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kravdojo/gym-api/internal/catalog"
	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/purchase"
	"github.com/kravdojo/gym-api/internal/query"
)

func productIDs(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestProductsStartsUnfiltered(t *testing.T) {
	s := NewProducts(catalog.Products(), nil, nil)
	assert.Equal(t, catalog.Products(), s.Filtered())
}

func TestProductsRecomputesOnEveryChange(t *testing.T) {
	s := NewProducts(catalog.Products(), nil, nil)

	var notified []ProductsState
	unsubscribe := s.Subscribe(func(st ProductsState) { notified = append(notified, st) })
	defer unsubscribe()

	s.SetSearchQuery("krav")
	assert.Equal(t, []string{"1", "2", "5"}, productIDs(s.Filtered()))

	s.SetFilters(WithPriceRange(&domain.PriceRange{Min: 50, Max: 100}))
	assert.Equal(t, []string{"1", "5"}, productIDs(s.Filtered()))

	s.SetFilters(WithCategory("livros"))
	assert.Equal(t, []string{"5"}, productIDs(s.Filtered()))

	require.Len(t, notified, 3)
	assert.Equal(t, "krav", notified[2].Query)
	assert.Equal(t, "livros", notified[2].Filter.Category)
	assert.Equal(t, []string{"5"}, productIDs(notified[2].Filtered))
}

func TestProductsSetFiltersMergesAndClearsAxes(t *testing.T) {
	s := NewProducts(catalog.Products(), nil, nil)
	inStock := true

	s.SetFilters(WithCategory("equipamentos"), WithInStock(&inStock))
	s.SetFilters(WithType("protecao"))
	st := s.State()
	assert.Equal(t, "equipamentos", st.Filter.Category)
	assert.Equal(t, "protecao", st.Filter.Type)
	require.NotNil(t, st.Filter.InStock)
	assert.Equal(t, []string{"2", "3"}, productIDs(st.Filtered))

	s.SetFilters(WithCategory(""), WithInStock(nil))
	st = s.State()
	assert.Empty(t, st.Filter.Category)
	assert.Nil(t, st.Filter.InStock)
	assert.Equal(t, []string{"2", "3", "7"}, productIDs(st.Filtered))
}

func TestProductsClearFiltersResetsQueryToo(t *testing.T) {
	s := NewProducts(catalog.Products(), nil, nil)
	s.SetSearchQuery("whey")
	s.SetFilters(WithType("nutricao"))
	require.Len(t, s.Filtered(), 1)

	s.ClearFilters()

	st := s.State()
	assert.Empty(t, st.Query)
	assert.False(t, st.Filter.Active())
	assert.Len(t, st.Filtered, 8)
}

func TestProductsReplaceRecomputesAndRejectsDuplicates(t *testing.T) {
	s := NewProducts(catalog.Products(), nil, nil)
	s.SetSearchQuery("protetor")
	selected := catalog.Products()[2]
	s.SetSelected(&selected)

	err := s.Replace([]domain.Product{{ID: "x", Name: "Protetor de canela"}, {ID: "y", Name: "Corda"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, productIDs(s.Filtered()))
	assert.Nil(t, s.State().Selected)

	err = s.Replace([]domain.Product{{ID: "x"}, {ID: "x"}})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, []string{"x"}, productIDs(s.Filtered()))
}

func TestProductsRequestPurchase(t *testing.T) {
	recorder := purchase.NewRecorder()
	s := NewProducts(catalog.Products(), recorder, nil)

	_, err := s.RequestPurchase("1", "1", 1, "", "Preto", "")
	assert.ErrorIs(t, err, purchase.ErrSizeRequired)

	_, err = s.RequestPurchase("1", "1", 1, "M", "", "")
	assert.ErrorIs(t, err, purchase.ErrColorRequired)

	_, err = s.RequestPurchase("1", "404", 1, "", "", "")
	assert.ErrorIs(t, err, purchase.ErrUnknownProduct)

	_, err = s.RequestPurchase("1", "5", 0, "", "", "")
	assert.ErrorIs(t, err, purchase.ErrInvalidQuantity)

	assert.Empty(t, recorder.Intents())

	intent, err := s.RequestPurchase("1", "8", 2, "", "Preto", "entregar na academia")
	require.NoError(t, err)
	assert.Equal(t, domain.PurchasePending, intent.Status)
	assert.Equal(t, "Preto", intent.Color)

	st := s.State()
	require.Len(t, st.Intents, 1)
	assert.Equal(t, intent.ID, st.Intents[0].ID)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := NewProducts(catalog.Products(), nil, nil)
	calls := 0
	unsubscribe := s.Subscribe(func(ProductsState) { calls++ })

	s.SetSearchQuery("a")
	unsubscribe()
	s.SetSearchQuery("b")

	assert.Equal(t, 1, calls)
}

func TestProductsStateDoesNotAliasStore(t *testing.T) {
	s := NewProducts(catalog.Products(), nil, nil)
	inStock := true
	s.SetFilters(WithPriceRange(&domain.PriceRange{Min: 0, Max: 1000}), WithInStock(&inStock))
	kimono := catalog.Products()[0]
	s.SetSelected(&kimono)
	want := productIDs(s.Filtered())

	var published ProductsState
	unsubscribe := s.Subscribe(func(st ProductsState) { published = st })
	defer unsubscribe()
	s.SetSearchQuery("")

	for _, st := range []ProductsState{s.State(), published} {
		st.Filter.PriceRange.Max = 30
		*st.Filter.InStock = false
		st.Selected.Name = "changed"
	}

	st := s.State()
	require.NotNil(t, st.Filter.PriceRange)
	assert.Equal(t, 1000.0, st.Filter.PriceRange.Max)
	assert.True(t, *st.Filter.InStock)
	assert.Equal(t, kimono.Name, st.Selected.Name)
	assert.Equal(t, want, productIDs(s.Filtered()))
	assert.Equal(t, productIDs(s.Filtered()), productIDs(query.Products(st.Products, st.Query, st.Filter)))
}

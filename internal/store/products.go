package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/purchase"
	"github.com/kravdojo/gym-api/internal/query"
)

type ProductsState struct {
	Products []domain.Product
	Filtered []domain.Product
	Query    string
	Filter   domain.ProductFilter
	Selected *domain.Product
	Intents  []domain.PurchaseIntent
}

// FilterOption changes one axis of the product filter. The zero value of
// each option clears its axis.
type FilterOption func(*domain.ProductFilter)

func WithCategory(slug string) FilterOption {
	return func(f *domain.ProductFilter) { f.Category = slug }
}

func WithType(slug string) FilterOption {
	return func(f *domain.ProductFilter) { f.Type = slug }
}

func WithPriceRange(r *domain.PriceRange) FilterOption {
	return func(f *domain.ProductFilter) {
		if r == nil {
			f.PriceRange = nil
			return
		}
		cp := *r
		f.PriceRange = &cp
	}
}

func WithInStock(v *bool) FilterOption {
	return func(f *domain.ProductFilter) {
		if v == nil {
			f.InStock = nil
			return
		}
		cp := *v
		f.InStock = &cp
	}
}

type Products struct {
	Observable[ProductsState]

	mu       sync.RWMutex
	state    ProductsState
	recorder *purchase.Recorder
	logger   *zap.Logger
}

func NewProducts(products []domain.Product, recorder *purchase.Recorder, logger *zap.Logger) *Products {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = purchase.NewRecorder()
	}
	s := &Products{
		recorder: recorder,
		logger:   logger,
	}
	s.state.Products = append([]domain.Product(nil), products...)
	s.state.Filtered = query.Products(s.state.Products, "", domain.ProductFilter{})
	return s
}

func (s *Products) State() ProductsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Products) Filtered() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.state.Filtered...)
}

func (s *Products) SetSearchQuery(q string) {
	s.update(func(st *ProductsState) { st.Query = q })
}

// SetFilters merges opts into the current filter.
func (s *Products) SetFilters(opts ...FilterOption) {
	s.update(func(st *ProductsState) {
		for _, opt := range opts {
			opt(&st.Filter)
		}
	})
}

// ClearFilters resets both the filter and the search query.
func (s *Products) ClearFilters() {
	s.update(func(st *ProductsState) {
		st.Filter = domain.ProductFilter{}
		st.Query = ""
	})
}

// Replace swaps the source collection.
func (s *Products) Replace(products []domain.Product) error {
	if err := checkUnique(products); err != nil {
		return err
	}
	s.update(func(st *ProductsState) {
		st.Products = append([]domain.Product(nil), products...)
		if st.Selected != nil && !containsProduct(st.Products, st.Selected.ID) {
			st.Selected = nil
		}
	})
	return nil
}

func (s *Products) SetSelected(p *domain.Product) {
	s.update(func(st *ProductsState) {
		if p == nil {
			st.Selected = nil
			return
		}
		cp := *p
		st.Selected = &cp
	})
}

// RequestPurchase checks the size/colour selection against the product and
// records a pending intent for the student.
func (s *Products) RequestPurchase(studentID, productID string, quantity int, size, color, notes string) (domain.PurchaseIntent, error) {
	s.mu.RLock()
	product, ok := findProduct(s.state.Products, productID)
	s.mu.RUnlock()
	if !ok {
		return domain.PurchaseIntent{}, fmt.Errorf("product %s: %w", productID, purchase.ErrUnknownProduct)
	}

	if err := purchase.CheckSelection(product, size, color); err != nil {
		return domain.PurchaseIntent{}, err
	}
	if quantity < 1 {
		return domain.PurchaseIntent{}, purchase.ErrInvalidQuantity
	}

	intent := s.recorder.Record(purchase.Request{
		StudentID: studentID,
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		Notes:     notes,
	})
	s.logger.Info("purchase intent recorded",
		zap.String("intent_id", intent.ID),
		zap.String("student_id", studentID),
		zap.String("product_id", productID),
	)

	s.update(func(st *ProductsState) {})
	return intent, nil
}

// update mutates the state, recomputes the filtered view and notifies
// subscribers.
func (s *Products) update(fn func(*ProductsState)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.Filtered = query.Products(s.state.Products, s.state.Query, s.state.Filter)
	snap := s.snapshot()
	s.mu.Unlock()

	s.Publish(snap)
}

func (s *Products) snapshot() ProductsState {
	snap := s.state
	snap.Products = append([]domain.Product(nil), s.state.Products...)
	snap.Filtered = append([]domain.Product(nil), s.state.Filtered...)
	snap.Filter = s.state.Filter.Clone()
	if s.state.Selected != nil {
		selected := *s.state.Selected
		snap.Selected = &selected
	}
	snap.Intents = s.recorder.Intents()
	return snap
}

func findProduct(products []domain.Product, id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func containsProduct(products []domain.Product, id string) bool {
	_, ok := findProduct(products, id)
	return ok
}

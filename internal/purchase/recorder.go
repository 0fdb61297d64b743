// Package purchase captures purchase intents. Recording never fails; review
// and fulfilment happen elsewhere.
package purchase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kravdojo/gym-api/internal/domain"
)

type Request struct {
	StudentID string
	ProductID string
	Quantity  int
	Size      string
	Color     string
	Notes     string
}

type Option func(*Recorder)

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(fn func() string) Option {
	return func(r *Recorder) { r.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(r *Recorder) { r.now = fn }
}

type Recorder struct {
	mu      sync.RWMutex
	intents []domain.PurchaseIntent
	newID   func() string
	now     func() time.Time
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		intents: []domain.PurchaseIntent{},
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewIntent builds the pending intent for req.
func NewIntent(req Request, id string, createdAt time.Time) domain.PurchaseIntent {
	return domain.PurchaseIntent{
		ID:        id,
		StudentID: req.StudentID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
		Notes:     req.Notes,
		CreatedAt: createdAt.UTC(),
		Status:    domain.PurchasePending,
	}
}

// Record appends a pending intent. Callers validate the request beforehand.
func (r *Recorder) Record(req Request) domain.PurchaseIntent {
	intent := NewIntent(req, r.newID(), r.now())

	r.mu.Lock()
	r.intents = append(r.intents, intent)
	r.mu.Unlock()

	return intent
}

func (r *Recorder) Intents() []domain.PurchaseIntent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.PurchaseIntent{}, r.intents...)
}

func (r *Recorder) ForStudent(studentID string) []domain.PurchaseIntent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.PurchaseIntent{}
	for _, intent := range r.intents {
		if intent.StudentID == studentID {
			out = append(out, intent)
		}
	}
	return out
}

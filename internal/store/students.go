package store

import (
	"sync"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/query"
)

type StudentsState struct {
	Students []domain.Student
	Filtered []domain.Student
	Query    string
}

// StudentStats are the admin counters, computed over the filtered view.
type StudentStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Paid    int `json:"paid"`
	DueSoon int `json:"dueSoon"`
	Overdue int `json:"overdue"`
}

type Students struct {
	Observable[StudentsState]

	mu    sync.RWMutex
	state StudentsState
}

func NewStudents(students []domain.Student) *Students {
	s := &Students{}
	s.state.Students = append([]domain.Student(nil), students...)
	s.state.Filtered = query.Students(s.state.Students, "")
	return s
}

func (s *Students) State() StudentsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Students) Filtered() []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Student(nil), s.state.Filtered...)
}

func (s *Students) SetSearchQuery(q string) {
	s.update(func(st *StudentsState) { st.Query = q })
}

func (s *Students) Replace(students []domain.Student) error {
	if err := checkUnique(students); err != nil {
		return err
	}
	s.update(func(st *StudentsState) {
		st.Students = append([]domain.Student(nil), students...)
	})
	return nil
}

func (s *Students) Get(id string) (domain.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.state.Students {
		if st.ID == id {
			return st, true
		}
	}
	return domain.Student{}, false
}

func (s *Students) Stats() StudentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := StudentStats{Total: len(s.state.Filtered)}
	for _, st := range s.state.Filtered {
		if st.IsActive {
			stats.Active++
		}
		switch st.PaymentStatus.Status {
		case domain.PaymentPaid:
			stats.Paid++
		case domain.PaymentDueSoon:
			stats.DueSoon++
		case domain.PaymentOverdue:
			stats.Overdue++
		}
	}
	return stats
}

func (s *Students) update(fn func(*StudentsState)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.Filtered = query.Students(s.state.Students, s.state.Query)
	snap := s.snapshot()
	s.mu.Unlock()

	s.Publish(snap)
}

func (s *Students) snapshot() StudentsState {
	snap := s.state
	snap.Students = append([]domain.Student(nil), s.state.Students...)
	snap.Filtered = append([]domain.Student(nil), s.state.Filtered...)
	return snap
}

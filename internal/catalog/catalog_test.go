package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kravdojo/gym-api/internal/domain"
)

func TestProductsHaveUniqueIDsAndValidStock(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Products() {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.StockQuantity, 0)
		if !p.InStock {
			assert.Zero(t, p.StockQuantity, p.Name)
		}
	}
	assert.Len(t, seen, 8)
}

func TestStudentsHaveValidPaymentStatus(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for _, s := range Students(now) {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
		assert.True(t, s.PaymentStatus.Status.Valid(), s.Name)
		assert.True(t, s.Rank.Valid(), s.Name)
	}

	overdue := Students(now)[2]
	assert.Equal(t, domain.PaymentOverdue, overdue.PaymentStatus.Status)
	assert.True(t, overdue.NextPaymentDate.Before(now))
}

func TestNewStudentDefaults(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	s := NewStudent("42", "Rita", "rita@email.com", "", nil, now)

	assert.Equal(t, "Faixa Branca", s.Rank.Name)
	assert.Equal(t, domain.PaymentPaid, s.PaymentStatus.Status)
	assert.Equal(t, DefaultMonthlyFee, s.MonthlyFee)
	assert.Equal(t, time.Date(2026, time.November, 14, 0, 0, 0, 0, time.UTC), s.NextPaymentDate)
	assert.True(t, s.IsActive)
}

func TestRankLookup(t *testing.T) {
	r, ok := RankByName("Faixa Azul")
	require.True(t, ok)
	assert.Equal(t, 5, r.Level)
	assert.Equal(t, domain.LevelAdvanced, LevelForRank(r))

	_, ok = RankByName("Faixa Roxa")
	assert.False(t, ok)
	assert.Equal(t, domain.LevelBeginner, LevelForRank(DefaultRank()))
}

func TestRankByBelt(t *testing.T) {
	for _, belt := range []string{"Faixa Preta", "preta", " PRETA "} {
		r, ok := RankByBelt(belt)
		require.True(t, ok, belt)
		assert.Equal(t, 7, r.Level)
	}

	_, ok := RankByBelt("roxa")
	assert.False(t, ok)
}

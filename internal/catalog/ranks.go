// Package catalog holds the built-in collections of ranks, students and
// products used to seed the stores and the database.
package catalog

import (
	"strings"

	"github.com/kravdojo/gym-api/internal/domain"
)

func Ranks() []domain.Rank {
	return []domain.Rank{
		{ID: "1", Name: "Faixa Branca", Level: 1, Color: "#ffffff", Description: "Iniciante - Fundamentos básicos"},
		{ID: "2", Name: "Faixa Amarela", Level: 2, Color: "#fbbf24", Description: "Básico - Técnicas fundamentais"},
		{ID: "3", Name: "Faixa Laranja", Level: 3, Color: "#f97316", Description: "Intermediário - Combinações básicas"},
		{ID: "4", Name: "Faixa Verde", Level: 4, Color: "#22c55e", Description: "Intermediário - Defesas avançadas"},
		{ID: "5", Name: "Faixa Azul", Level: 5, Color: "#3b82f6", Description: "Avançado - Técnicas complexas"},
		{ID: "6", Name: "Faixa Marrom", Level: 6, Color: "#a3a3a3", Description: "Avançado - Preparação para instrutor"},
		{ID: "7", Name: "Faixa Preta", Level: 7, Color: "#000000", Description: "Instrutor - Domínio completo"},
	}
}

// DefaultRank is the belt assigned to new sign-ups.
func DefaultRank() domain.Rank {
	return Ranks()[0]
}

// RankByName looks a belt up by its display name.
func RankByName(name string) (domain.Rank, bool) {
	for _, r := range Ranks() {
		if r.Name == name {
			return r, true
		}
	}
	return domain.Rank{}, false
}

// RankByBelt accepts a free-text belt, either the full name ("Faixa Azul")
// or just the colour ("azul"), ignoring case.
func RankByBelt(belt string) (domain.Rank, bool) {
	belt = strings.TrimSpace(belt)
	for _, r := range Ranks() {
		if strings.EqualFold(r.Name, belt) || strings.EqualFold(strings.TrimPrefix(r.Name, "Faixa "), belt) {
			return r, true
		}
	}
	return domain.Rank{}, false
}

// LevelForRank maps a belt onto the coarser membership level of API users.
func LevelForRank(r domain.Rank) domain.MembershipLevel {
	switch {
	case r.Level >= 7:
		return domain.LevelInstructor
	case r.Level >= 5:
		return domain.LevelAdvanced
	case r.Level >= 3:
		return domain.LevelIntermediate
	default:
		return domain.LevelBeginner
	}
}

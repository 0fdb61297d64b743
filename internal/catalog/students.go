package catalog

import (
	"time"

	"github.com/kravdojo/gym-api/internal/domain"
)

const DefaultMonthlyFee = 150.0

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func day(now time.Time, offset int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, time.UTC)
}

func dayPtr(now time.Time, offset int) *time.Time {
	t := day(now, offset)
	return &t
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Students returns the demo roster. Payment dates are relative to now.
func Students(now time.Time) []domain.Student {
	ranks := Ranks()
	return []domain.Student{
		{
			ID:        "1",
			Name:      "João Silva",
			Email:     "joao@email.com",
			Phone:     "(11) 99999-9999",
			BirthDate: datePtr(1990, time.May, 15),
			Rank:      ranks[3],
			JoinDate:  date(2023, time.January, 15),
			IsActive:  true,
			PaymentStatus: domain.PaymentStatus{
				Status:          domain.PaymentPaid,
				LastPaymentDate: dayPtr(now, -10),
				Amount:          DefaultMonthlyFee,
			},
			NextPaymentDate: day(now, 20),
			MonthlyFee:      DefaultMonthlyFee,
			Address: &domain.Address{
				Street:       "Rua das Flores",
				Number:       "123",
				Neighborhood: "Centro",
				City:         "São Paulo",
				State:        "SP",
				ZipCode:      "01234-567",
			},
			EmergencyContact: &domain.EmergencyContact{
				Name:         "Maria Silva",
				Relationship: "Esposa",
				Phone:        "(11) 88888-8888",
			},
		},
		{
			ID:        "2",
			Name:      "Ana Costa",
			Email:     "ana@email.com",
			Phone:     "(11) 77777-7777",
			BirthDate: datePtr(1985, time.August, 22),
			Rank:      ranks[4],
			JoinDate:  date(2022, time.June, 10),
			IsActive:  true,
			PaymentStatus: domain.PaymentStatus{
				Status:          domain.PaymentDueSoon,
				LastPaymentDate: dayPtr(now, -25),
				Amount:          DefaultMonthlyFee,
			},
			NextPaymentDate: day(now, 5),
			MonthlyFee:      DefaultMonthlyFee,
		},
		{
			ID:        "3",
			Name:      "Carlos Lima",
			Email:     "carlos@email.com",
			Phone:     "(11) 66666-6666",
			BirthDate: datePtr(1992, time.December, 3),
			Rank:      ranks[1],
			JoinDate:  date(2023, time.September, 20),
			IsActive:  true,
			PaymentStatus: domain.PaymentStatus{
				Status:          domain.PaymentOverdue,
				LastPaymentDate: dayPtr(now, -40),
				Amount:          DefaultMonthlyFee,
			},
			NextPaymentDate: day(now, -10),
			MonthlyFee:      DefaultMonthlyFee,
		},
		{
			ID:        "4",
			Name:      "Mariana Santos",
			Email:     "mariana@email.com",
			Phone:     "(11) 55555-5555",
			BirthDate: datePtr(1988, time.April, 18),
			Rank:      ranks[5],
			JoinDate:  date(2021, time.March, 5),
			IsActive:  true,
			PaymentStatus: domain.PaymentStatus{
				Status:          domain.PaymentPaid,
				LastPaymentDate: dayPtr(now, -5),
				Amount:          DefaultMonthlyFee,
			},
			NextPaymentDate: day(now, 25),
			MonthlyFee:      DefaultMonthlyFee,
		},
	}
}

// CurrentStudent is the identity the mock authenticator logs in as.
func CurrentStudent(now time.Time) domain.Student {
	return Students(now)[0]
}

// NewStudent builds the record of a fresh sign-up: white belt, first month paid.
func NewStudent(id, name, email, phone string, birthDate *time.Time, now time.Time) domain.Student {
	return domain.Student{
		ID:        id,
		Name:      name,
		Email:     email,
		Phone:     phone,
		BirthDate: birthDate,
		Rank:      DefaultRank(),
		JoinDate:  day(now, 0),
		IsActive:  true,
		PaymentStatus: domain.PaymentStatus{
			Status:          domain.PaymentPaid,
			LastPaymentDate: dayPtr(now, 0),
			Amount:          DefaultMonthlyFee,
		},
		NextPaymentDate: day(now, 30),
		MonthlyFee:      DefaultMonthlyFee,
	}
}

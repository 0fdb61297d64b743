package domain

import "time"

type PaymentState string

const (
	PaymentPaid    PaymentState = "paid"
	PaymentDueSoon PaymentState = "due_soon"
	PaymentOverdue PaymentState = "overdue"
)

func (s PaymentState) Valid() bool {
	switch s {
	case PaymentPaid, PaymentDueSoon, PaymentOverdue:
		return true
	}
	return false
}

type PaymentStatus struct {
	Status          PaymentState `json:"status"`
	LastPaymentDate *time.Time   `json:"lastPaymentDate,omitempty"`
	Amount          float64      `json:"amount"`
}

// Rank is a belt grade. Levels are ordered, 1 being the entry belt.
type Rank struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (r Rank) Valid() bool {
	return r.ID != "" && r.Level >= 1
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type Student struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	BirthDate        *time.Time        `json:"birthDate,omitempty"`
	Rank             Rank              `json:"rank"`
	JoinDate         time.Time         `json:"joinDate"`
	IsActive         bool              `json:"isActive"`
	PaymentStatus    PaymentStatus     `json:"paymentStatus"`
	NextPaymentDate  time.Time         `json:"nextPaymentDate"`
	MonthlyFee       float64           `json:"monthlyFee"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

func (s Student) SearchFields() []string {
	return []string{s.Name, s.Email, s.Rank.Name}
}

func (s Student) Key() string {
	return s.ID
}

package domain

import "time"

type MembershipLevel string

const (
	LevelBeginner     MembershipLevel = "beginner"
	LevelIntermediate MembershipLevel = "intermediate"
	LevelAdvanced     MembershipLevel = "advanced"
	LevelInstructor   MembershipLevel = "instructor"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User is an account managed through the member API.
type User struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Surname         string          `json:"sobrenome,omitempty"`
	Email           string          `json:"email"`
	Password        string          `json:"-"`
	Phone           string          `json:"phone,omitempty"`
	BirthDate       *time.Time      `json:"birthDate,omitempty"`
	MembershipLevel MembershipLevel `json:"membershipLevel"`
	Belt            string          `json:"faixa,omitempty"`
	Role            Role            `json:"role"`
	JoinDate        time.Time       `json:"joinDate"`
	IsActive        bool            `json:"isActive"`
}

func (u User) SearchFields() []string {
	return []string{u.Name, u.Email}
}

func (u User) Key() string {
	return u.ID
}

// UserUpdate carries a partial update. Nil fields are left untouched.
type UserUpdate struct {
	Name            *string          `json:"name,omitempty"`
	Surname         *string          `json:"sobrenome,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Password        *string          `json:"password,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	MembershipLevel *MembershipLevel `json:"membershipLevel,omitempty"`
	Belt            *string          `json:"faixa,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
}

func (u UserUpdate) Apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Surname != nil {
		user.Surname = *u.Surname
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.MembershipLevel != nil {
		user.MembershipLevel = *u.MembershipLevel
	}
	if u.Belt != nil {
		user.Belt = *u.Belt
	}
	if u.IsActive != nil {
		user.IsActive = *u.IsActive
	}
	return user
}

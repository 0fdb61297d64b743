package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/kravdojo/gym-api/internal/domain"
)

// UpdateUserRequest is a partial update. Absent fields are left untouched.
type UpdateUserRequest struct {
	Name            *string `json:"name"`
	Sobrenome       *string `json:"sobrenome"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	Phone           *string `json:"phone"`
	MembershipLevel *string `json:"membershipLevel"`
	Faixa           *string `json:"faixa"`
	IsActive        *bool   `json:"isActive"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(3, 100)),
		validation.Field(&req.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&req.Password, validation.NilOrNotEmpty, validation.Length(6, 72)),
		validation.Field(&req.MembershipLevel, validation.NilOrNotEmpty, validation.In(
			string(domain.LevelBeginner),
			string(domain.LevelIntermediate),
			string(domain.LevelAdvanced),
			string(domain.LevelInstructor),
		)),
	)
}

func (req *UpdateUserRequest) ToDomain() domain.UserUpdate {
	update := domain.UserUpdate{
		Name:     req.Name,
		Surname:  req.Sobrenome,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Belt:     req.Faixa,
		IsActive: req.IsActive,
	}
	if req.MembershipLevel != nil {
		level := domain.MembershipLevel(*req.MembershipLevel)
		update.MembershipLevel = &level
	}
	return update
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

// SignupRequest is the registration body. The mobile client sends
// PascalCase keys.
type SignupRequest struct {
	Nome      string `json:"Nome"`
	Sobrenome string `json:"Sobrenome"`
	Email     string `json:"Email"`
	Password  string `json:"Password"`
	Faixa     string `json:"Faixa"`
}

func (req *SignupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nome, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Sobrenome, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&req.Faixa, validation.Length(0, 50)),
	)
}

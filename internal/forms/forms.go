// Package forms validates the login, sign-up, user and profile forms before
// they reach the session store or the API.
package forms

import (
	"errors"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/session"
)

const (
	phonePattern = `^\(\d{2}\)\s\d{4,5}-\d{4}$`
	datePattern  = `^\d{2}/\d{2}/\d{4}$`
	dateLayout   = "02/01/2006"
)

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errInvalidPhone     = errors.New("must look like (11) 99999-9999")
	errInvalidDate      = errors.New("must look like DD/MM/AAAA")
)

var (
	phoneExp = regexp2.MustCompile(phonePattern, regexp2.None)
	dateExp  = regexp2.MustCompile(datePattern, regexp2.None)
)

// matchRule is validation.Match for regexp2 expressions. Empty values pass.
type matchRule struct {
	exp *regexp2.Regexp
	err error
}

func (r matchRule) Validate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	ok, err := r.exp.MatchString(s)
	if err != nil {
		return err
	}
	if !ok {
		return r.err
	}
	return nil
}

var (
	phoneRule = matchRule{exp: phoneExp, err: errInvalidPhone}
	dateRule  = validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if err := (matchRule{exp: dateExp, err: errInvalidDate}).Validate(s); err != nil {
			return err
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return errInvalidDate
		}
		return nil
	})
)

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f *LoginForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(6, 0)),
	)
}

func (f *LoginForm) Credentials() session.Credentials {
	return session.Credentials{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

type SignUpForm struct {
	Name            string `json:"name"`
	Surname         string `json:"sobrenome"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Belt            string `json:"faixa"`
	BirthDate       string `json:"birthDate"`
}

func (f *SignUpForm) Validate() error {
	err := validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(2, 0)),
		validation.Field(&f.Surname, validation.Required, validation.Length(2, 0)),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Phone, phoneRule),
		validation.Field(&f.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&f.ConfirmPassword, validation.Required, validation.Length(6, 0)),
		validation.Field(&f.Belt, validation.Required),
		validation.Field(&f.BirthDate, dateRule),
	)
	if err != nil {
		return err
	}

	if f.Password != f.ConfirmPassword {
		return errPasswordMismatch
	}

	return nil
}

// Session converts a validated form into the session store's input.
func (f *SignUpForm) Session() session.SignUpForm {
	out := session.SignUpForm{
		Name:     strings.TrimSpace(f.Name),
		Surname:  strings.TrimSpace(f.Surname),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Belt:     f.Belt,
		Phone:    f.Phone,
	}
	if t, err := time.Parse(dateLayout, f.BirthDate); err == nil {
		out.BirthDate = &t
	}
	return out
}

// UserForm is the admin create/edit form. In edit mode an empty password
// means "keep the current one".
type UserForm struct {
	Name     string `json:"name"`
	Surname  string `json:"sobrenome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Belt     string `json:"faixa"`
	EditMode bool   `json:"-"`
}

func (f *UserForm) Validate() error {
	passwordRules := []validation.Rule{validation.Length(6, 0)}
	if !f.EditMode {
		passwordRules = append(passwordRules, validation.Required)
	}

	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(3, 0)),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, passwordRules...),
		validation.Field(&f.Belt, validation.Required),
	)
}

func (f *UserForm) User() domain.User {
	return domain.User{
		Name:     strings.TrimSpace(f.Name),
		Surname:  strings.TrimSpace(f.Surname),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Belt:     f.Belt,
	}
}

func (f *UserForm) Update() domain.UserUpdate {
	u := f.User()
	update := domain.UserUpdate{
		Name:    &u.Name,
		Surname: &u.Surname,
		Email:   &u.Email,
		Belt:    &u.Belt,
	}
	if u.Password != "" {
		update.Password = &u.Password
	}
	return update
}

// ProfileForm edits the signed-in student's own record.
type ProfileForm struct {
	Name                         string `json:"name"`
	Email                        string `json:"email"`
	Phone                        string `json:"phone"`
	Street                       string `json:"street"`
	Number                       string `json:"number"`
	Neighborhood                 string `json:"neighborhood"`
	City                         string `json:"city"`
	State                        string `json:"state"`
	ZipCode                      string `json:"zipCode"`
	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactPhone        string `json:"emergencyContactPhone"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`
}

func (f *ProfileForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(2, 0)),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Phone, phoneRule),
		validation.Field(&f.EmergencyContactPhone, phoneRule),
	)
}

// ProfileFormFor pre-fills the form from s.
func ProfileFormFor(s domain.Student) ProfileForm {
	f := ProfileForm{Name: s.Name, Email: s.Email, Phone: s.Phone}
	if a := s.Address; a != nil {
		f.Street, f.Number, f.Neighborhood = a.Street, a.Number, a.Neighborhood
		f.City, f.State, f.ZipCode = a.City, a.State, a.ZipCode
	}
	if c := s.EmergencyContact; c != nil {
		f.EmergencyContactName = c.Name
		f.EmergencyContactPhone = c.Phone
		f.EmergencyContactRelationship = c.Relationship
	}
	return f
}

// Apply writes the form onto s. Address and emergency contact are dropped
// when every one of their fields is blank.
func (f *ProfileForm) Apply(s domain.Student) domain.Student {
	s.Name = strings.TrimSpace(f.Name)
	s.Email = strings.TrimSpace(f.Email)
	s.Phone = f.Phone

	addr := domain.Address{
		Street:       f.Street,
		Number:       f.Number,
		Neighborhood: f.Neighborhood,
		City:         f.City,
		State:        f.State,
		ZipCode:      f.ZipCode,
	}
	switch {
	case addr == (domain.Address{}):
		s.Address = nil
	case s.Address != nil:
		addr.Complement = s.Address.Complement
		s.Address = &addr
	default:
		s.Address = &addr
	}

	contact := domain.EmergencyContact{
		Name:         f.EmergencyContactName,
		Relationship: f.EmergencyContactRelationship,
		Phone:        f.EmergencyContactPhone,
	}
	if contact == (domain.EmergencyContact{}) {
		s.EmergencyContact = nil
	} else {
		s.EmergencyContact = &contact
	}

	return s
}

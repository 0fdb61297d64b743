package forms

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kravdojo/gym-api/internal/catalog"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	return errs
}

func TestLoginForm(t *testing.T) {
	ok := LoginForm{Email: "joao@email.com", Password: "123456"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "joao@email.com", ok.Credentials().Email)

	bad := LoginForm{Email: "joao", Password: "123"}
	errs := fieldErrors(t, bad.Validate())
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func validSignUp() SignUpForm {
	return SignUpForm{
		Name:            "Paula",
		Surname:         "Souza",
		Email:           "paula@email.com",
		Phone:           "(11) 91234-5678",
		Password:        "segredo",
		ConfirmPassword: "segredo",
		Belt:            "Faixa Branca",
		BirthDate:       "15/05/1990",
	}
}

func TestSignUpForm(t *testing.T) {
	f := validSignUp()
	require.NoError(t, f.Validate())

	out := f.Session()
	require.NotNil(t, out.BirthDate)
	assert.Equal(t, time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC), *out.BirthDate)
	assert.Equal(t, "Souza", out.Surname)
	assert.Equal(t, "Faixa Branca", out.Belt)
}

func TestSignUpFormOptionalFields(t *testing.T) {
	f := validSignUp()
	f.Phone = ""
	f.BirthDate = ""
	require.NoError(t, f.Validate())
	assert.Nil(t, f.Session().BirthDate)
}

func TestSignUpFormRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SignUpForm)
		field  string
	}{
		{"short name", func(f *SignUpForm) { f.Name = "P" }, "name"},
		{"short surname", func(f *SignUpForm) { f.Surname = "S" }, "sobrenome"},
		{"bad email", func(f *SignUpForm) { f.Email = "paula@" }, "email"},
		{"bad phone", func(f *SignUpForm) { f.Phone = "11912345678" }, "phone"},
		{"short password", func(f *SignUpForm) { f.Password, f.ConfirmPassword = "12345", "12345" }, "password"},
		{"missing belt", func(f *SignUpForm) { f.Belt = "" }, "faixa"},
		{"bad date format", func(f *SignUpForm) { f.BirthDate = "1990-05-15" }, "birthDate"},
		{"impossible date", func(f *SignUpForm) { f.BirthDate = "31/02/1990" }, "birthDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSignUp()
			tt.modify(&f)
			errs := fieldErrors(t, f.Validate())
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestSignUpFormPasswordMismatch(t *testing.T) {
	f := validSignUp()
	f.ConfirmPassword = "outrasenha"
	assert.ErrorIs(t, f.Validate(), errPasswordMismatch)
}

func TestUserForm(t *testing.T) {
	create := UserForm{Name: "Bruno", Email: "bruno@dojo.com", Belt: "Faixa Verde"}
	errs := fieldErrors(t, create.Validate())
	assert.Contains(t, errs, "password")

	create.Password = "123456"
	require.NoError(t, create.Validate())
	assert.Equal(t, "123456", create.User().Password)

	edit := UserForm{Name: "Bruno", Email: "bruno@dojo.com", Belt: "Faixa Verde", EditMode: true}
	require.NoError(t, edit.Validate())
	assert.Nil(t, edit.Update().Password)

	edit.Name = "Bo"
	errs = fieldErrors(t, edit.Validate())
	assert.Contains(t, errs, "name")
}

func TestProfileFormRoundTrip(t *testing.T) {
	student := catalog.CurrentStudent(time.Now())
	f := ProfileFormFor(student)
	require.NoError(t, f.Validate())
	assert.Equal(t, "Rua das Flores", f.Street)

	f.City = "Campinas"
	f.EmergencyContactName = ""
	f.EmergencyContactPhone = ""
	f.EmergencyContactRelationship = ""
	updated := f.Apply(student)

	require.NotNil(t, updated.Address)
	assert.Equal(t, "Campinas", updated.Address.City)
	assert.Nil(t, updated.EmergencyContact)
	assert.Equal(t, student.Rank, updated.Rank)
}

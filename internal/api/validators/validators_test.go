package validators

import (
	"testing"

	"ezyvoyage/internal/models/request_models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterOn(v))
	return v
}

func TestStrongPassword(t *testing.T) {
	tests := map[string]bool{
		"Passw0rd!":  true,
		"Abcdef1@":   true,
		"password1!": false,
		"PASSWORD1!": false,
		"Password!!": false,
		"Password12": false,
		"Passw0rd!#": false,
		"":           false,
	}
	for in, want := range tests {
		assert.Equal(t, want, StrongPassword(in), in)
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	v := newValidator(t)

	valid := request_models.RegisterRequest{
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		Password:    "Passw0rd!",
		Nationality: "India",
		Gender:      "Female",
		Age:         29,
		TravelMode:  "Trekking",
	}
	assert.NoError(t, v.Struct(valid))

	bad := valid
	bad.FullName = "A"
	bad.Email = "not-an-email"
	bad.Password = "password"
	bad.Gender = "Other"
	bad.Age = 130
	bad.TravelMode = "Space Tourism"

	errs, ok := FieldErrors(v.Struct(bad))
	require.True(t, ok)

	got := map[string]string{}
	for _, e := range errs {
		got[e.Field] = e.Message
	}
	assert.Equal(t, map[string]string{
		"fullName":   "Full name must be between 2 and 50 characters",
		"email":      "Please enter a valid email",
		"password":   "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character",
		"gender":     "Please select a valid gender",
		"age":        "Age must be between 1 and 120",
		"travelMode": "Please select a valid travel mode",
	}, got)
}

func TestShortPasswordMessage(t *testing.T) {
	v := newValidator(t)
	req := request_models.RegisterRequest{
		FullName: "Asha Rao", Email: "asha@example.com", Password: "Pa1!",
		Nationality: "India", Gender: "Male", Age: 30, TravelMode: "Relaxation",
	}
	errs, ok := FieldErrors(v.Struct(req))
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "Password must be at least 8 characters long", errs[0].Message)
}

func TestUpdateProfileOptionalFields(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(request_models.UpdateProfileRequest{}))

	gender := "Robot"
	errs, ok := FieldErrors(v.Struct(request_models.UpdateProfileRequest{Gender: &gender}))
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "gender", errs[0].Field)
}

func TestFieldErrors_NotValidation(t *testing.T) {
	_, ok := FieldErrors(assert.AnError)
	assert.False(t, ok)
}

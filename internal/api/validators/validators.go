package validators

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"ezyvoyage/internal/models/db_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const passwordSpecials = "@$!%*?&"

var Genders = []string{db_models.GenderMale, db_models.GenderFemale, db_models.GenderPreferNotToSay}

// Register installs the custom tags on gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"travelmode":     validateTravelMode,
		"gender":         validateGender,
		"strongpassword": validateStrongPassword,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func validateTravelMode(fl validator.FieldLevel) bool {
	return pipeline.IsTravelMode(fl.Field().String())
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, g := range Genders {
		if g == value {
			return true
		}
	}
	return false
}

// StrongPassword requires an upper and lower case letter, a digit and one of
// @$!%*?&, with no other characters.
func StrongPassword(p string) bool {
	var upper, lower, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return upper && lower && digit && special
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	return StrongPassword(fl.Field().String())
}

var messages = map[string]string{
	"fullName":    "Full name must be between 2 and 50 characters",
	"email":       "Please enter a valid email",
	"nationality": "Nationality is required",
	"gender":      "Please select a valid gender",
	"age":         "Age must be between 1 and 120",
	"travelMode":  "Please select a valid travel mode",
	"title":       "Title is required",
	"location":    "Location is required",
}

// FieldErrors converts a binding error into per-field messages. ok is false
// when err is not a validation error (malformed JSON and the like).
func FieldErrors(err error) ([]utils.FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonName(fe.Field())
		out = append(out, utils.FieldError{Field: field, Message: message(field, fe.Tag())})
	}
	return out, true
}

func message(field, tag string) string {
	if field == "password" {
		if tag == "strongpassword" {
			return "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"
		}
		return "Password must be at least 8 characters long"
	}
	if m, ok := messages[field]; ok {
		return m
	}
	return "Invalid value for " + field
}

// jsonName lower-cases the first letter of a struct field name; request
// structs use the same camel case for their json tags.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

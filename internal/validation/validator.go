// Package validation checks request payloads and reports field errors keyed by
// JSON name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/tenx-mn/catering-service/pkg/util"
)

var (
	validate     *validator.Validate
	phonePattern = regexp.MustCompile(`^[+]?[0-9]{8,15}$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	// maxbytes bounds the UTF-8 length, where max counts runes.
	_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
}

// errorMessages maps languages to validation tags to messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required":       "The field '%s' is required.",
		"required_if":    "The field '%s' is required.",
		"email":          "The field '%s' must be a valid email address.",
		"min":            "The field '%s' must be at least %s.",
		"max":            "The field '%s' must be at most %s.",
		"gte":            "The field '%s' must be greater than or equal to %s.",
		"lte":            "The field '%s' must be less than or equal to %s.",
		"oneof":          "The field '%s' must be one of: %s.",
		"phone":          "The field '%s' must be a phone number of 8 to 15 digits.",
		"strongpassword": "The field '%s' must contain an uppercase letter, a lowercase letter and a digit.",
		"uuid":           "The field '%s' must be a valid id.",
		"maxbytes":       "The field '%s' must be at most %s bytes long.",
	},
	"mn": {
		"required":       "'%s' талбарыг заавал бөглөнө үү.",
		"required_if":    "'%s' талбарыг заавал бөглөнө үү.",
		"email":          "'%s' талбар зөв и-мэйл хаяг байх ёстой.",
		"min":            "'%s' талбар хамгийн багадаа %s байх ёстой.",
		"max":            "'%s' талбар хамгийн ихдээ %s байх ёстой.",
		"gte":            "'%s' талбар %s-аас их буюу тэнцүү байх ёстой.",
		"lte":            "'%s' талбар %s-аас бага буюу тэнцүү байх ёстой.",
		"oneof":          "'%s' талбар дараахын нэг байх ёстой: %s.",
		"phone":          "'%s' талбар 8-15 оронтой утасны дугаар байх ёстой.",
		"strongpassword": "'%s' талбарт том үсэг, жижиг үсэг, тоо орсон байх ёстой.",
		"uuid":           "'%s' талбар зөв дугаар байх ёстой.",
		"maxbytes":       "'%s' талбар хамгийн ихдээ %s байт байх ёстой.",
	},
}

// IsStrongPassword reports whether s has an upper case letter, a lower case
// letter and a digit.
func IsStrongPassword(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func parseMessage(field string, e validator.FieldError, lang string) string {
	msgs, ok := errorMessages[lang]
	if !ok {
		msgs = errorMessages["en"]
	}
	msg, ok := msgs[e.Tag()]
	if !ok {
		return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, field, e.Param())
	}
	return fmt.Sprintf(msg, field)
}

// ValidateStruct validates s and returns JSON field names mapped to messages.
// An empty map means s is valid.
func ValidateStruct(s any, lang ...string) map[string]string {
	out := make(map[string]string)
	l := "en"
	if len(lang) > 0 && lang[0] != "" {
		l = lang[0]
	}

	err := validate.Struct(s)
	if err == nil {
		return out
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		out["_"] = err.Error()
		return out
	}
	for _, e := range validationErrs {
		field := fieldPath(e.Namespace())
		out[field] = parseMessage(field, e, l)
	}
	return out
}

// Validate returns a VALIDATION_FAILED DomainError when s is invalid.
func Validate(s any, lang ...string) error {
	fields := ValidateStruct(s, lang...)
	if len(fields) == 0 {
		return nil
	}
	return FieldErrors(fields)
}

// FieldErrors builds a VALIDATION_FAILED error from field messages.
func FieldErrors(fields map[string]string) error {
	details := make(map[string]any, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	return util.NewValidationError("Validation failed", details)
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

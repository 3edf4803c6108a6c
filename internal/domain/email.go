package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxEmailLength is the longest accepted e-mail address, in characters.
const MaxEmailLength = 180

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a normalized (trimmed, lower-cased) e-mail address.
// The zero value is not a valid Email; use NewEmail.
type Email struct {
	value string
}

// NewEmail validates raw and returns the normalized Email.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if normalized == "" {
		return Email{}, NewValidationError("email", "Email nao pode ser vazio")
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, NewValidationError("email", "Email invalido")
	}
	if utf8.RuneCountInString(normalized) > MaxEmailLength {
		return Email{}, NewValidationError("email", "Email excede limite de 180 caracteres")
	}

	return Email{value: normalized}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

// Equal reports whether both addresses wrap the same value.
func (e Email) Equal(other Email) bool { return e.value == other.value }

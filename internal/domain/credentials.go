package domain

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	minSenhaHashLength  = 30
	minTokenShareLength = 24
	minSenhaLength      = 8
	tokenShareBytes     = 32
)

var tokenSharePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SenhaHash wraps an already-hashed password.
type SenhaHash struct {
	value string
}

// NewSenhaHash validates a stored hash. It does not hash anything itself.
func NewSenhaHash(raw string) (SenhaHash, error) {
	normalized := strings.TrimSpace(raw)

	if normalized == "" {
		return SenhaHash{}, NewValidationError("senhaHash", "SenhaHash nao pode ser vazio")
	}
	if utf8.RuneCountInString(normalized) < minSenhaHashLength {
		return SenhaHash{}, NewValidationError("senhaHash", "SenhaHash parece invalida (curta demais)")
	}

	return SenhaHash{value: normalized}, nil
}

// HashSenha hashes a plain-text password with bcrypt and wraps the result.
func HashSenha(plain string) (SenhaHash, error) {
	if utf8.RuneCountInString(plain) < minSenhaLength {
		return SenhaHash{}, NewValidationError("senha", "Senha deve ter pelo menos 8 caracteres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return SenhaHash{}, fmt.Errorf("hash senha: %w", err)
	}

	return NewSenhaHash(string(hash))
}

// Confere reports whether plain matches the stored hash.
func (s SenhaHash) Confere(plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(s.value), []byte(plain))
	return err == nil
}

func (s SenhaHash) Value() string { return s.value }

// String never exposes the hash.
func (s SenhaHash) String() string { return "[redacted]" }

func (s SenhaHash) Equal(other SenhaHash) bool { return s.value == other.value }

// TokenShare identifies a share link. It is URL-safe.
type TokenShare struct {
	value string
}

// NewTokenShare validates raw as a share token.
func NewTokenShare(raw string) (TokenShare, error) {
	normalized := strings.TrimSpace(raw)

	if normalized == "" {
		return TokenShare{}, NewValidationError("token", "TokenShare nao pode ser vazio")
	}
	if utf8.RuneCountInString(normalized) < minTokenShareLength {
		return TokenShare{}, NewValidationError("token", "TokenShare deve ter pelo menos 24 caracteres")
	}
	if !tokenSharePattern.MatchString(normalized) {
		return TokenShare{}, NewValidationError("token", "TokenShare contem caracteres invalidos")
	}

	return TokenShare{value: normalized}, nil
}

// GerarTokenShare returns a fresh random token (base64url, 43 characters).
func GerarTokenShare() (TokenShare, error) {
	buf := make([]byte, tokenShareBytes)
	if _, err := rand.Read(buf); err != nil {
		return TokenShare{}, fmt.Errorf("generate token: %w", err)
	}

	tok, err := NewTokenShare(base64.RawURLEncoding.EncodeToString(buf))
	if err != nil {
		// base64url output always satisfies the charset and length rules.
		return TokenShare{}, errors.Join(ErrInvalidPayload, err)
	}
	return tok, nil
}

func (t TokenShare) Value() string  { return t.value }
func (t TokenShare) String() string { return t.value }

func (t TokenShare) Equal(other TokenShare) bool { return t.value == other.value }

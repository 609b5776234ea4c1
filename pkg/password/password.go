package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword пароль не задан
	ErrEmptyPassword = errors.New("password: empty password")

	// ErrMismatch пароль не совпадает с хешем
	ErrMismatch = errors.New("password: mismatch")
)

// Hash возвращает bcrypt-хеш пароля
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password: failed to hash: %w", err)
	}
	return string(b), nil
}

// Checker проверяет пароль администратора против сохранённого хеша
type Checker struct {
	hash []byte
}

func NewChecker(hash string) *Checker {
	return &Checker{hash: []byte(hash)}
}

// Check возвращает ErrMismatch при неверном пароле
func (c *Checker) Check(plain string) error {
	if plain == "" {
		return ErrEmptyPassword
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("password: %w", err)
	}
	return nil
}

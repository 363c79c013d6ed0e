package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrAccessDenied возвращается при неверном пароле администратора.
var ErrAccessDenied = errors.New("access denied")

// HashPasscode возвращает bcrypt-хэш пароля для хранения в конфигурации.
func HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", fmt.Errorf("auth: пароль не может быть пустым")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: не удалось захэшировать пароль: %w", err)
	}
	return string(hash), nil
}

// VerifyPasscode сверяет пароль с bcrypt-хэшем из конфигурации.
// Административная поверхность активируется только после успеха.
func VerifyPasscode(hash, passcode string) error {
	if hash == "" || passcode == "" {
		return ErrAccessDenied
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)); err != nil {
		return ErrAccessDenied
	}
	return nil
}

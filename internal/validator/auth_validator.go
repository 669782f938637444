package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// 入力が不正。Message がそのまま detail になる
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

const minPasswordLen = 8

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

type AuthValidator struct{}

// DI
func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

// サインアップの入力を検証
func (v *AuthValidator) ValidateRegister(ctx context.Context, email, password, fullName string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	// パスワード最低文字数
	if len(password) < minPasswordLen {
		return invalid("password", "Password must be at least 8 characters")
	}

	if strings.TrimSpace(fullName) == "" {
		return invalid("full_name", "Full name is required")
	}
	return nil
}

// ログインの入力を検証
func (v *AuthValidator) ValidateLogin(ctx context.Context, email, password string) error {
	// 必須チェック
	if strings.TrimSpace(email) == "" || password == "" {
		return invalid("email", "Email and password are required")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email", "Email is required")
	}
	if !emailRe.MatchString(email) {
		return invalid("email", "Invalid email format")
	}
	return nil
}

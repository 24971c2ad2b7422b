package auth

import (
	"errors"
	"unicode/utf8"

	"github.com/xyz-asif/skincare/internal/pkg/validator"
)

const (
	// counted in characters
	minPasswordLength = 4
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
)

func ValidateRegister(req *RegisterRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("email must be a valid email address")
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return errors.New("password must be at least 4 characters")
	}
	if len(req.Password) > maxPasswordLength {
		return errors.New("password must be at most 72 bytes")
	}
	return nil
}

func ValidateLogin(req *LoginRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("email must be a valid email address")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

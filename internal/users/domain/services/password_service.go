package services

import (
	"errors"
)

// Ошибки, связанные с паролями и уникальностью пользователей.
var (
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrMalformedHash      = errors.New("malformed password hash")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
)

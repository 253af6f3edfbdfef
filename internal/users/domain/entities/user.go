package entities

import (
	"errors"
	"time"
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User представляет основную сущность домена пользователя.
// Email уникален среди всех пользователей, сравнение регистрозависимое.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsPublic     bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate представляет частичное обновление пользователя.
// Nil-поле означает "не менять"; установленный указатель перезаписывает
// значение, включая явно пустое. IsActive не обновляется через UserUpdate,
// его сбрасывает только деактивация.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	IsPublic     *bool
}

// IsEmpty сообщает, что ни одно поле обновления не установлено.
func (u *UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil && u.IsPublic == nil
}

package api

import (
	"context"

	"github.com/TimShare/SkillMap/internal/users/domain/entities"
)

// UserChanges несет поля, которые вызывающая сторона намерена изменить.
// Nil-поле означает "не трогать". Password содержит открытый пароль;
// установленный, но пустой Password отбрасывается и не затирает
// существующий хэш.
type UserChanges struct {
	Name     *string
	Email    *string
	Password *string
	IsPublic *bool
}

// UserUseCase определяет основной порт для операций жизненного цикла пользователя.
type UserUseCase interface {
	CreateUser(ctx context.Context, name, email, password string, isPublic bool) (string, error)

	GetUser(ctx context.Context, userID string) (*entities.User, error)

	UpdateUser(ctx context.Context, userID string, changes *UserChanges) (*entities.User, error)

	DeactivateUser(ctx context.Context, userID string) error
}

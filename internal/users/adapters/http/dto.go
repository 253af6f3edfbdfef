// Package http содержит HTTP обработчики для операций над пользователями.
package http

import (
	"github.com/TimShare/SkillMap/internal/users/domain/entities"
)

// CreateUserRequest - тело запроса на создание пользователя.
// IsPublic по умолчанию true, если поле не передано.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsPublic *bool  `json:"is_public"`
}

// UpdateUserRequest - тело запроса на частичное обновление пользователя.
// Отсутствующее поле не меняется; переданное пустое значение перезаписывает,
// кроме пароля, пустое значение которого отбрасывается.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsPublic *bool   `json:"is_public"`
}

// UserResponse - снимок пользователя в ответе API.
// Хэш пароля никогда не сериализуется.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsPublic bool   `json:"is_public"`
	IsActive bool   `json:"is_active"`
}

// NewUserResponse строит ответ API из доменной сущности.
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		IsPublic: user.IsPublic,
		IsActive: user.IsActive,
	}
}

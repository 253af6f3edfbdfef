package repositories

import (
	"context"

	"github.com/TimShare/SkillMap/internal/users/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
// Каждая операция выполняется в собственной атомарной единице работы.
type UserRepository interface {
	// Get возвращает полный снимок пользователя по ID.
	Get(ctx context.Context, id string) (*entities.User, error)

	// Create вставляет нового пользователя и возвращает сгенерированный ID.
	// Нарушение уникальности email транслируется в services.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entities.User) (string, error)

	// Update применяет только установленные поля updates и возвращает
	// снимок после обновления.
	Update(ctx context.Context, id string, updates *entities.UserUpdate) (*entities.User, error)

	// Deactivate сбрасывает is_active. Повторная деактивация успешна.
	Deactivate(ctx context.Context, id string) error
}

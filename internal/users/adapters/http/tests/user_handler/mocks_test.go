package user_handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userhttp "github.com/TimShare/SkillMap/internal/users/adapters/http"
	"github.com/TimShare/SkillMap/internal/users/domain/entities"
	"github.com/TimShare/SkillMap/internal/users/ports/api"
)

// mockUserUseCase - мок сервиса пользователей для тестирования обработчиков.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) CreateUser(ctx context.Context, name, email, password string, isPublic bool) (string, error) {
	args := m.Called(ctx, name, email, password, isPublic)
	return args.String(0), args.Error(1)
}

func (m *mockUserUseCase) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserUseCase) UpdateUser(ctx context.Context, userID string, changes *api.UserChanges) (*entities.User, error) {
	args := m.Called(ctx, userID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserUseCase) DeactivateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// newTestApp собирает приложение с полной цепочкой middleware и маршрутов.
func newTestApp(userService api.UserUseCase) *fiber.App {
	app := fiber.New()
	userhttp.SetupRouter(app, userService)
	return app
}

func performRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

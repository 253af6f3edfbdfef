package userrepo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimShare/SkillMap/internal/users/adapters/postgres"
	"github.com/TimShare/SkillMap/internal/users/domain/entities"
	"github.com/TimShare/SkillMap/internal/users/domain/services"
	"github.com/TimShare/SkillMap/pkg/logger"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	inputUser := &entities.User{
		Name:         "New User",
		Email:        "new@example.com",
		PasswordHash: "hashed_new_password",
		IsPublic:     true,
		IsActive:     true,
	}

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		generatedID := uuid.New().String()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(pgxmock.AnyArg(), inputUser.Name, inputUser.Email, inputUser.PasswordHash, inputUser.IsPublic, true).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(generatedID))

		repo := postgres.NewUserRepository(mock)
		createdID, err := repo.Create(ctx, inputUser)

		require.NoError(t, err)
		assert.Equal(t, generatedID, createdID)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка при создании пользователя - дублирующийся email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(pgxmock.AnyArg(), inputUser.Name, inputUser.Email, inputUser.PasswordHash, inputUser.IsPublic, true).
			WillReturnError(newUniqueViolation())

		repo := postgres.NewUserRepository(mock)
		createdID, err := repo.Create(ctx, inputUser)

		assert.Empty(t, createdID)
		require.ErrorIs(t, err, services.ErrEmailAlreadyExists)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка при создании пользователя - общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(pgxmock.AnyArg(), inputUser.Name, inputUser.Email, inputUser.PasswordHash, inputUser.IsPublic, true).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewUserRepository(mock)
		createdID, err := repo.Create(ctx, inputUser)

		assert.Empty(t, createdID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Contains(t, err.Error(), "error creating user")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Новая запись всегда создается активной", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		// Репозиторий передает is_active = true независимо от входного значения.
		inactiveInput := &entities.User{
			Name:         "Another User",
			Email:        "another@example.com",
			PasswordHash: "hash",
			IsPublic:     false,
			IsActive:     false,
		}

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(pgxmock.AnyArg(), inactiveInput.Name, inactiveInput.Email, inactiveInput.PasswordHash, inactiveInput.IsPublic, true).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

		repo := postgres.NewUserRepository(mock)
		createdID, err := repo.Create(ctx, inactiveInput)

		require.NoError(t, err)
		assert.NotEmpty(t, createdID)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

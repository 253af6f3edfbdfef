package userrepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimShare/SkillMap/internal/users/adapters/postgres"
	"github.com/TimShare/SkillMap/internal/users/domain/entities"
)

var errDatabaseConnection = errors.New("database connection error")

// Колонки снимка пользователя в порядке выборки репозитория.
var userColumns = []string{"id", "name", "email", "password_hash", "is_public", "is_active", "created_at", "updated_at"}

// Ошибка Postgres о нарушении ограничения уникальности email.
func newUniqueViolation() *pgconn.PgError {
	return &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: "users_email_key",
	}
}

func newTestUser() entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.User{
		ID:           "test-user-id",
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		IsPublic:     true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userRows(user entities.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(user.ID, user.Name, user.Email, user.PasswordHash, user.IsPublic, user.IsActive, user.CreatedAt, user.UpdatedAt)
}

func assertUserEquals(t *testing.T, expected *entities.User, actual *entities.User) {
	t.Helper()
	require.NotNil(t, actual)
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.Name, actual.Name)
	assert.Equal(t, expected.Email, actual.Email)
	assert.Equal(t, expected.PasswordHash, actual.PasswordHash)
	assert.Equal(t, expected.IsPublic, actual.IsPublic)
	assert.Equal(t, expected.IsActive, actual.IsActive)
	assert.Equal(t, expected.CreatedAt, actual.CreatedAt)
	assert.Equal(t, expected.UpdatedAt, actual.UpdatedAt)
}

func TestNewUserRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := postgres.NewUserRepository(mock)
	assert.NotNil(t, repo)
}

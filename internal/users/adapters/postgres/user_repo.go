package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/TimShare/SkillMap/internal/users/domain/entities"
	"github.com/TimShare/SkillMap/internal/users/domain/services"
	"github.com/TimShare/SkillMap/internal/users/ports/repositories"
	"github.com/TimShare/SkillMap/pkg/logger"
)

// Код ошибки Postgres для нарушения ограничения уникальности.
const uniqueViolationCode = "23505"

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Get возвращает полный снимок пользователя по ID.
func (r *UserRepository) Get(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Get"))

	query := `
        SELECT id, name, email, password_hash, is_public, is_active, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.IsPublic,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// Create вставляет нового пользователя и возвращает сгенерированный ID.
// Дубликат email определяется по ошибке ограничения уникальности при вставке,
// без предварительной проверки, чтобы исключить гонку между проверкой и вставкой.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (id, name, email, password_hash, is_public, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `

	var createdID string
	err := r.pool.QueryRow(ctx, query,
		uuid.New().String(),
		user.Name,
		user.Email,
		user.PasswordHash,
		user.IsPublic,
		true,
	).Scan(&createdID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate email on insert", zap.String("email", user.Email))
			return "", services.ErrEmailAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return createdID, nil
}

// Update применяет только установленные поля updates и возвращает снимок
// после обновления. Пустое обновление возвращает текущее состояние строки.
func (r *UserRepository) Update(ctx context.Context, id string, updates *entities.UserUpdate) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	if updates.IsEmpty() {
		return r.Get(ctx, id)
	}

	setClauses := make([]string, 0, 5)
	args := []interface{}{id}
	placeholder := 2

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, placeholder))
		args = append(args, value)
		placeholder++
	}

	if updates.Name != nil {
		appendSet("name", *updates.Name)
	}
	if updates.Email != nil {
		appendSet("email", *updates.Email)
	}
	if updates.PasswordHash != nil {
		appendSet("password_hash", *updates.PasswordHash)
	}
	if updates.IsPublic != nil {
		appendSet("is_public", *updates.IsPublic)
	}
	appendSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf(`
        UPDATE users
        SET %s
        WHERE id = $1
        RETURNING id, name, email, password_hash, is_public, is_active, created_at, updated_at
    `, strings.Join(setClauses, ", "))

	var updatedUser entities.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&updatedUser.ID,
		&updatedUser.Name,
		&updatedUser.Email,
		&updatedUser.PasswordHash,
		&updatedUser.IsPublic,
		&updatedUser.IsActive,
		&updatedUser.CreatedAt,
		&updatedUser.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate email on update", zap.String("id", id))
			return nil, services.ErrEmailAlreadyExists
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return &updatedUser, nil
}

// Deactivate сбрасывает is_active пользователя. Состояние строки не
// перепроверяется: повторная деактивация затрагивает ту же строку и успешна.
func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Deactivate"))

	query := `
        UPDATE users
        SET is_active = false, updated_at = $2
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		log.Error(ctx, "error deactivating user", zap.Error(err))
		return fmt.Errorf("error deactivating user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deactivation", zap.String("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}

// Определяет нарушение ограничения уникальности по коду ошибки Postgres.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

package app

import (
	"context"
	"fmt"

	"github.com/TimShare/SkillMap/internal/users/domain/entities"
	"github.com/TimShare/SkillMap/internal/users/ports/api"
	"github.com/TimShare/SkillMap/internal/users/ports/repositories"
	svc "github.com/TimShare/SkillMap/internal/users/ports/services"
	"github.com/TimShare/SkillMap/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodCreateUser     = "CreateUser"
	methodGetUser        = "GetUser"
	methodUpdateUser     = "UpdateUser"
	methodDeactivateUser = "DeactivateUser"

	msgStartCreation       = "starting user creation"
	msgEmptyName           = "empty name provided"
	msgEmptyEmail          = "empty email provided"
	msgEmptyPassword       = "empty password provided"
	msgUserCreated         = "user created successfully"
	msgRequestingUser      = "requesting user"
	msgEmptyUserIDProvided = "empty user ID provided"
	msgUserRetrieved       = "user successfully retrieved"
	msgStartUpdate         = "starting user update"
	msgEmptyPasswordSkip   = "empty password in update, keeping existing hash"
	msgUserUpdated         = "user updated successfully"
	msgStartDeactivation   = "starting user deactivation"
	msgUserDeactivated     = "user deactivated successfully"

	msgErrHashPassword   = "failed to hash password"
	msgErrCreateUser     = "failed to create user"
	msgErrFindingUser    = "failed to find user by ID"
	msgErrUpdateUser     = "failed to update user"
	msgErrDeactivateUser = "failed to deactivate user"

	errCtxValidatingName     = "validating name"
	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxValidatingUserID   = "validating user ID"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxFetchingUser       = "fetching user"
	errCtxUpdatingUser       = "updating user"
	errCtxDeactivatingUser   = "deactivating user"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase создает новый экземпляр сервиса жизненного цикла пользователя.
func NewUserUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// CreateUser создает нового пользователя с предоставленными данными.
// Пароль хэшируется до обращения к репозиторию.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, name, email, password string, isPublic bool) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateUser), zap.String("email", email))
	log.Debug(ctx, msgStartCreation)

	if name == "" {
		log.Debug(ctx, msgEmptyName)
		return "", fmt.Errorf("%s: %w", errCtxValidatingName, entities.ErrEmptyName)
	}
	if email == "" {
		log.Debug(ctx, msgEmptyEmail)
		return "", fmt.Errorf("%s: %w", errCtxValidatingEmail, entities.ErrEmptyEmail)
	}
	if password == "" {
		log.Debug(ctx, msgEmptyPassword)
		return "", fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrEmptyPassword)
	}

	passwordHash, err := u.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsPublic:     isPublic,
		IsActive:     true,
	}

	userID, err := u.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserCreated, zap.String("userID", userID))
	return userID, nil
}

// GetUser получает снимок пользователя по ID.
func (u *UserUseCaseImpl) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUser), zap.String("userID", userID))
	log.Debug(ctx, msgRequestingUser)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	user, err := u.userRepo.Get(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	log.Info(ctx, msgUserRetrieved)
	return user, nil
}

// UpdateUser применяет частичное обновление к пользователю.
// Установленный, но пустой пароль отбрасывается: пустое значение
// никогда не перезаписывает существующий хэш.
func (u *UserUseCaseImpl) UpdateUser(ctx context.Context, userID string, changes *api.UserChanges) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUser), zap.String("userID", userID))
	log.Debug(ctx, msgStartUpdate)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	updates := &entities.UserUpdate{
		Name:     changes.Name,
		Email:    changes.Email,
		IsPublic: changes.IsPublic,
	}

	if changes.Password != nil {
		if *changes.Password == "" {
			log.Debug(ctx, msgEmptyPasswordSkip)
		} else {
			passwordHash, err := u.passwordSvc.Hash(ctx, *changes.Password)
			if err != nil {
				log.Error(ctx, msgErrHashPassword, zap.Error(err))
				return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
			}
			updates.PasswordHash = &passwordHash
		}
	}

	updatedUser, err := u.userRepo.Update(ctx, userID, updates)
	if err != nil {
		log.Error(ctx, msgErrUpdateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserUpdated)
	return updatedUser, nil
}

// DeactivateUser сбрасывает флаг is_active пользователя.
func (u *UserUseCaseImpl) DeactivateUser(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeactivateUser), zap.String("userID", userID))
	log.Debug(ctx, msgStartDeactivation)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	if err := u.userRepo.Deactivate(ctx, userID); err != nil {
		log.Error(ctx, msgErrDeactivateUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeactivatingUser, err)
	}

	log.Info(ctx, msgUserDeactivated)
	return nil
}

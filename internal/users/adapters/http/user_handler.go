package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/TimShare/SkillMap/internal/users/adapters/http/middleware"
	"github.com/TimShare/SkillMap/internal/users/domain/entities"
	domainsvc "github.com/TimShare/SkillMap/internal/users/domain/services"
	"github.com/TimShare/SkillMap/internal/users/ports/api"
	"github.com/TimShare/SkillMap/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateUser     = "user handler: create user"
	LogHandlerGetUser        = "user handler: get user"
	LogHandlerUpdateUser     = "user handler: update user"
	LogHandlerDeactivateUser = "user handler: deactivate user"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики операций над пользователями.
type Handler struct {
	userService api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userService api.UserUseCase) *Handler {
	return &Handler{
		userService: userService,
	}
}

// Вспомогательная функция для отправки ошибки HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Транслирует доменные ошибки в статус-коды HTTP.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainsvc.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, entities.ErrEmptyName),
		errors.Is(err, entities.ErrEmptyEmail),
		errors.Is(err, entities.ErrEmptyPassword),
		errors.Is(err, entities.ErrEmptyUserID),
		errors.Is(err, domainsvc.ErrInvalidPassword):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CreateUser обрабатывает запрос на создание нового пользователя.
func (h *Handler) CreateUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateUser)

	var req CreateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	userID, err := h.userService.CreateUser(requestCtx, req.Name, req.Email, req.Password, isPublic)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	createdUser, err := h.userService.GetUser(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusCreated).JSON(NewUserResponse(createdUser)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetUser обрабатывает запрос на получение пользователя по ID.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetUser)

	user, err := h.userService.GetUser(requestCtx, ctx.Params("id"))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(NewUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateUser обрабатывает запрос на частичное обновление пользователя.
func (h *Handler) UpdateUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateUser)

	var req UpdateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	changes := &api.UserChanges{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsPublic: req.IsPublic,
	}

	updatedUser, err := h.userService.UpdateUser(requestCtx, ctx.Params("id"), changes)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(NewUserResponse(updatedUser)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeactivateUser обрабатывает запрос на деактивацию пользователя.
// Деактивация является мягким удалением: запись остается читаемой.
func (h *Handler) DeactivateUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeactivateUser)

	if err := h.userService.DeactivateUser(requestCtx, ctx.Params("id")); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusFromError(err), err.Error())
	}

	ctx.Status(http.StatusNoContent)
	return nil
}

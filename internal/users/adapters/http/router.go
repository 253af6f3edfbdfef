package http

import (
	"github.com/gofiber/fiber/v3"

	"github.com/TimShare/SkillMap/internal/users/adapters/http/middleware"
	"github.com/TimShare/SkillMap/internal/users/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, userService api.UserUseCase) {
	userHandler := NewHandler(userService)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Проверка живости сервиса.
	app.Get("/ping", func(ctx fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"message": "pong!"})
	})

	// User routes.
	userRoutes := app.Group("/users")
	userRoutes.Post("/", userHandler.CreateUser)
	userRoutes.Get("/:id", userHandler.GetUser)
	userRoutes.Put("/:id", userHandler.UpdateUser)
	userRoutes.Delete("/:id", userHandler.DeactivateUser)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}

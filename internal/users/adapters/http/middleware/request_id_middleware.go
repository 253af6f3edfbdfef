// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/TimShare/SkillMap/pkg/logger"
)

// HeaderXRequestID - заголовок с идентификатором запроса.
const HeaderXRequestID = "X-Request-ID"

// RequestContextKey - ключ Locals с контекстом запроса,
// обогащенным идентификатором запроса.
const RequestContextKey = "requestContext"

// NewRequestIDMiddleware создает промежуточное ПО, которое принимает или
// генерирует идентификатор запроса и помещает его в контекст запроса.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx.Set(HeaderXRequestID, requestID)
		ctx.Locals(RequestContextKey, logger.NewRequestIDContext(ctx.Context(), requestID))

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса с идентификатором запроса,
// если промежуточное ПО его подготовило.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(RequestContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

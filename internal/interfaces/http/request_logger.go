package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/print3d-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación entre cliente, API y logs.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un request id (o respeta el que envía el cliente),
// deja un sublogger en el contexto de usuario y registra cada petición al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		c.SetUserContext(log.WithRequestID(c.UserContext(), reqID))

		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler fije el status antes de registrar
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error().Err(err)
		}
		evt.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("http")
		return nil
	}
}

package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware assigns a request id and logs one entry per request.
func LoggingMiddleware(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Locals("request_id", requestID)

		// Передаем управление следующему обработчику
		if err := c.Next(); err != nil {
			// Ошибку нужно отрендерить здесь, иначе статус ответа еще не известен
			if handlerErr := c.App().Config().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		entry := logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      c.Method(),
			"path":        c.Path(),
			"status_code": status,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   c.IP(),
		})
		if userID, ok := c.Locals(UserIDKey).(uint); ok {
			entry = entry.WithField("user_id", userID)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
		return nil
	}
}

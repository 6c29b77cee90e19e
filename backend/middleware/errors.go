package middleware

import (
	"errors"

	"questboard/backend/apperror"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders handler errors in the JSON error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperror.As(err); ok {
		status := appErr.StatusCode()
		if status >= fiber.StatusInternalServerError {
			logrus.WithFields(logrus.Fields{
				"path":       c.Path(),
				"request_id": c.Locals("request_id"),
			}).WithError(err).Error("Internal error")
			return utils.Error(c, status, "Internal server error")
		}
		return utils.Error(c, status, appErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.Error(c, fiberErr.Code, fiberErr.Message)
	}

	logrus.WithField("path", c.Path()).WithError(err).Error("Unhandled error")
	return utils.Error(c, fiber.StatusInternalServerError, "Internal server error")
}

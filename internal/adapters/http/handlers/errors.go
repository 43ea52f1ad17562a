package handlers

import (
	"errors"

	"boardeasy/internal/core/domain"
	"boardeasy/internal/pkg/jwt"
	"boardeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy (including persistence failures) is a 500;
// the specific message is never leaked for those.
func handleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrConstraint):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Invalid username or password")
	case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, jwt.ErrTokenExpired):
		return response.Unauthorized(c, "Token expired")
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, jwt.ErrTokenInvalid):
		return response.Unauthorized(c, "Invalid token")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "Forbidden")
	default:
		return response.InternalServerError(c, "Internal server error")
	}
}

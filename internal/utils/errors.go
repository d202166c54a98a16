package utils

import (
	"errors"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// ErrorKindResponse maps typed core errors onto HTTP responses. Unknown
// errors become a 500 with the error message attached.
func ErrorKindResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return UnauthorizedResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrConstraintViolation):
		return ConflictResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, err.Error())
	}
}

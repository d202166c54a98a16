package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys on internal routes
type APIKeyMiddleware struct {
	cfg *models.APIKeyConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// AdminHandler validates the admin API key (moderation endpoints)
func (m *APIKeyMiddleware) AdminHandler() echo.MiddlewareFunc {
	return m.validate(m.cfg.AdminKey)
}

// ServiceHandler validates the service-to-service API key
func (m *APIKeyMiddleware) ServiceHandler() echo.MiddlewareFunc {
	return m.validate(m.cfg.ServiceKey)
}

func (m *APIKeyMiddleware) validate(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}

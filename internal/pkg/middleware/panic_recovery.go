package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryWithZapMiddleware recovers from panics in handlers, logs the
// stack trace and returns a 500 response instead of crashing the server.
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					stack := string(debug.Stack())

					userID := "anonymous"
					if uid := c.Get(ContextUserID); uid != nil {
						userID = fmt.Sprintf("%v", uid)
					}

					zapLogger.Error("Panic recovered",
						logger.Any("panic_value", r),
						logger.String("stack_trace", stack),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("user_id", userID),
					)

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}

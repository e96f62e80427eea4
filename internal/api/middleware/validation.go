package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

const (
	maxJSONBodyBytes   = 1024 * 1024      // 1MB for JSON payloads
	maxUploadBodyBytes = 10 * 1024 * 1024 // 10MB for resume uploads
)

// RequestValidation middleware tags every request with an ID and rejects
// oversized bodies before handlers buffer them.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				limit := int64(maxJSONBodyBytes)
				if strings.HasPrefix(c.Request().URL.Path, "/api/v1/resume/analyze") {
					limit = maxUploadBodyBytes
				}
				if c.Request().ContentLength > limit {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}

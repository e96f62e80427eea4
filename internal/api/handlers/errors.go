package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobbuddy-utils/internal/api/validation"
	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/conversation"
	"jobbuddy-utils/internal/extractor"
	"jobbuddy-utils/internal/fetcher"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterInterviewValidators(v)
	return v
}

// errorResponse maps domain errors onto HTTP statuses and the shared error
// envelope. Unknown errors become 500s with a generic message.
func errorResponse(c echo.Context, requestID string, err error) error {
	code := http.StatusInternalServerError
	errType := "internal_error"
	message := err.Error()

	var (
		customErr      *utils.CustomError
		formatErr      *extractor.UnsupportedFormatError
		fetchErr       *fetcher.FetchError
		providerErr    *llm.ProviderError
		malformedErr   *assistant.MalformedOutputError
		roleErr        *conversation.UnknownRoleError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		errType = "request_failed"
		message = customErr.Error()
	case errors.As(err, &formatErr):
		code = http.StatusUnsupportedMediaType
		errType = "unsupported_format"
	case errors.As(err, &fetchErr):
		code = http.StatusUnprocessableEntity
		errType = "fetch_failed"
	case errors.As(err, &providerErr):
		code = http.StatusBadGateway
		errType = "llm_failed"
	case errors.As(err, &malformedErr):
		code = http.StatusBadGateway
		errType = "malformed_output"
	case errors.As(err, &roleErr):
		code = http.StatusBadRequest
		errType = "invalid_request"
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		errType = "validation_failed"
	case errors.Is(err, conversation.ErrInterviewConcluded):
		code = http.StatusConflict
		errType = "interview_concluded"
	case errors.Is(err, utils.ErrSessionNotFound):
		code = http.StatusNotFound
		errType = "session_not_found"
	}

	return c.JSON(code, models.ErrorResponse{
		Error:     errType,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

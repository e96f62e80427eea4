package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

// SummarizeHandler turns a job posting URL into the structured listing
// document.
func SummarizeHandler(summarizer *assistant.JobPostSummarizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.SummarizeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind summarize request", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, utils.NewBadRequestError("invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			logger.Error("Summarize request validation failed", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, err)
		}

		logger.Info("Listing summarization requested", map[string]interface{}{"url": req.URL})

		listing, engine, err := summarizer.Summarize(c.Request().Context(), req.URL)
		if err != nil {
			logger.Error("Listing summarization failed", map[string]interface{}{
				"url":    req.URL,
				"engine": engine,
				"error":  err.Error(),
			})
			return errorResponse(c, reqID, err)
		}

		logger.Info("Listing summarization completed", map[string]interface{}{
			"url":             req.URL,
			"engine":          engine,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.SummarizeResponse{
			Success:        true,
			Listing:        listing,
			ProcessingTime: time.Since(startTime),
			Engine:         engine,
			RequestID:      reqID,
		})
	}
}

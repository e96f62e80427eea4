package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/extractor"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

// AnalyzeResumeHandler accepts a multipart resume upload under the "resume"
// field and returns the structured analysis document. The file extension is
// checked before the upload is buffered, so unsupported formats fail without
// any extraction or model work.
func AnalyzeResumeHandler(analyzer *assistant.ResumeAnalyzer) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		fileHeader, err := c.FormFile("resume")
		if err != nil {
			logger.Error("Missing resume upload", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, utils.NewBadRequestError("missing resume file upload"))
		}

		if !extractor.Supported(fileHeader.Filename) {
			return errorResponse(c, reqID, utils.NewUnsupportedFormatError(fileHeader.Filename))
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open resume upload", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, utils.NewInternalServerError("failed to read resume upload"))
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Error("Failed to read resume upload", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, utils.NewInternalServerError("failed to read resume upload"))
		}

		logger.Info("Resume analysis requested", map[string]interface{}{
			"filename": fileHeader.Filename,
			"size":     len(data),
		})

		resume, err := analyzer.Analyze(c.Request().Context(), fileHeader.Filename, data)
		if err != nil {
			logger.Error("Resume analysis failed", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, err)
		}

		logger.Info("Resume analysis completed", map[string]interface{}{
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:        true,
			Resume:         resume,
			ProcessingTime: time.Since(startTime),
			RequestID:      reqID,
		})
	}
}

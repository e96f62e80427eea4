package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

type interviewDone struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Exchanges int    `json:"exchanges"`
}

// InterviewStartHandler opens a mock interview session and returns the
// interviewer's introduction and first question as a single JSON response.
func InterviewStartHandler(interviewer *assistant.MockInterviewer, store *utils.SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.InterviewStartRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, reqID, err)
		}

		session, question, err := interviewer.Start(c.Request().Context(), req.Style, req.Profile, req.Listing)
		if err != nil {
			logger.Error("Failed to start mock interview", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, err)
		}

		if store != nil {
			if err := store.AppendTurns(c.Request().Context(), session.ID(),
				models.ChatTurn{Role: "assistant", Content: question},
			); err != nil {
				logger.Warn("Failed to persist interview opening", map[string]interface{}{
					"session_id": session.ID(),
					"error":      err.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, models.InterviewStartResponse{
			Success:   true,
			SessionID: session.ID(),
			Question:  question,
			State:     string(session.State()),
			RequestID: reqID,
		})
	}
}

// InterviewChatHandler streams the interviewer's next turn over SSE. The
// terminal "done" event carries the session state so clients know when the
// interview has concluded.
func InterviewChatHandler(interviewer *assistant.MockInterviewer, store *utils.SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.InterviewChatRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, reqID, err)
		}
		if req.History[len(req.History)-1].Role != "user" {
			return errorResponse(c, reqID, utils.NewValidationError("history must end with a user turn"))
		}

		chunks, session, err := interviewer.Chat(c.Request().Context(), req)
		if err != nil {
			return errorResponse(c, reqID, err)
		}

		startSSE(c)
		reply, ok := streamSSE(c, reqID, chunks)
		if !ok {
			return nil
		}

		if store != nil && reply != "" {
			if err := store.AppendTurns(c.Request().Context(), session.ID(),
				req.History[len(req.History)-1],
				models.ChatTurn{Role: "assistant", Content: reply},
			); err != nil {
				logger.Warn("Failed to persist interview turns", map[string]interface{}{
					"session_id": session.ID(),
					"error":      err.Error(),
				})
			}
		}

		return writeSSE(c, "done", interviewDone{
			SessionID: session.ID(),
			State:     string(session.State()),
			Exchanges: session.Exchanges(),
		})
	}
}

// InterviewQuestionsHandler streams a pre-interview preparation report.
func InterviewQuestionsHandler(interviewer *assistant.MockInterviewer) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.InterviewQuestionsRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, reqID, err)
		}

		chunks, err := interviewer.GenerateQuestions(c.Request().Context(), req.Style, req.Profile, req.Listing)
		if err != nil {
			return errorResponse(c, reqID, err)
		}

		startSSE(c)
		if _, ok := streamSSE(c, reqID, chunks); !ok {
			return nil
		}
		return writeSSE(c, "done", struct{}{})
	}
}

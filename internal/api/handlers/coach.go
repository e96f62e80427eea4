package handlers

import (
	"github.com/labstack/echo/v4"

	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

type coachDone struct {
	SessionID string `json:"session_id,omitempty"`
}

// CoachChatHandler streams one coaching turn over SSE. When a session store
// is configured and the request names (or receives) a session, the user
// turn and the coach's reply are persisted after the stream completes.
func CoachChatHandler(coach *assistant.CareerCoach, store *utils.SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.CoachChatRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, reqID, err)
		}
		if len(req.History) == 0 || req.History[len(req.History)-1].Role != "user" {
			return errorResponse(c, reqID, utils.NewValidationError("history must end with a user turn"))
		}

		chunks, err := coach.Chat(c.Request().Context(), req.Profile, req.History)
		if err != nil {
			return errorResponse(c, reqID, err)
		}

		sessionID := req.SessionID
		if store != nil && sessionID == "" {
			sessionID = utils.GenerateSessionID()
		}

		startSSE(c)
		reply, ok := streamSSE(c, reqID, chunks)
		if !ok {
			return nil
		}

		if store != nil && reply != "" {
			if err := store.AppendTurns(c.Request().Context(), sessionID,
				req.History[len(req.History)-1],
				models.ChatTurn{Role: "assistant", Content: reply},
			); err != nil {
				logger.Warn("Failed to persist coach session turns", map[string]interface{}{
					"session_id": sessionID,
					"error":      err.Error(),
				})
			}
		}

		return writeSSE(c, "done", coachDone{SessionID: sessionID})
	}
}

// CoachRecommendHandler streams a one-shot career development report.
func CoachRecommendHandler(coach *assistant.CareerCoach) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.CoachRecommendRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, reqID, err)
		}

		chunks, err := coach.Recommend(c.Request().Context(), req.Profile)
		if err != nil {
			return errorResponse(c, reqID, err)
		}

		startSSE(c)
		if _, ok := streamSSE(c, reqID, chunks); !ok {
			return nil
		}
		return writeSSE(c, "done", coachDone{})
	}
}

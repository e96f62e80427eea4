package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

// GetSessionHistoryHandler returns the stored history of one conversation
// session. A nil store means session persistence is disabled.
func GetSessionHistoryHandler(store *utils.SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		if store == nil {
			return errorResponse(c, reqID, &utils.CustomError{
				Code:    http.StatusServiceUnavailable,
				Message: "Session store is not configured",
			})
		}

		sessionID := c.Param("id")
		history, err := store.GetHistory(c.Request().Context(), sessionID)
		if err != nil {
			return errorResponse(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.SessionHistoryResponse{
			SessionID: history.SessionID,
			History:   history.Turns,
			UpdatedAt: history.UpdatedAt,
		})
	}
}

// DeleteSessionHandler removes a session and its history.
func DeleteSessionHandler(store *utils.SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		if store == nil {
			return errorResponse(c, reqID, &utils.CustomError{
				Code:    http.StatusServiceUnavailable,
				Message: "Session store is not configured",
			})
		}

		if err := store.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
			return errorResponse(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

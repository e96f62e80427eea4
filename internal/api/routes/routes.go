package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobbuddy-utils/internal/api/handlers"
	"jobbuddy-utils/internal/api/middleware"
	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/pkg/utils"
)

// Assistants bundles the four assistant facades for route wiring.
type Assistants struct {
	Analyzer    *assistant.ResumeAnalyzer
	Summarizer  *assistant.JobPostSummarizer
	Coach       *assistant.CareerCoach
	Interviewer *assistant.MockInterviewer
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager, assistants Assistants, store *utils.SessionStore) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Model-backed endpoints hold an LLM call open and get a longer deadline
	e.Use(middleware.SelectiveTimeout(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, store))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/resume/analyze", handlers.AnalyzeResumeHandler(assistants.Analyzer))
		v1.POST("/listing/summarize", handlers.SummarizeHandler(assistants.Summarizer))

		coach := v1.Group("/coach")
		{
			coach.POST("/chat", handlers.CoachChatHandler(assistants.Coach, store))
			coach.POST("/recommendation", handlers.CoachRecommendHandler(assistants.Coach))
		}

		interview := v1.Group("/interview")
		{
			interview.POST("/start", handlers.InterviewStartHandler(assistants.Interviewer, store))
			interview.POST("/chat", handlers.InterviewChatHandler(assistants.Interviewer, store))
			interview.POST("/questions", handlers.InterviewQuestionsHandler(assistants.Interviewer))
		}

		sessions := v1.Group("/sessions")
		{
			sessions.GET("/:id/history", handlers.GetSessionHistoryHandler(store))
			sessions.DELETE("/:id", handlers.DeleteSessionHandler(store))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "JobBuddy Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}

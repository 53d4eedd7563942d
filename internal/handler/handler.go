package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/middleware"
	"github.com/skillboost/skillboost/internal/repository/sqlc"
	"github.com/skillboost/skillboost/internal/service"
)

// Handler holds all dependencies needed by the API handlers.
type Handler struct {
	cfg        *config.Config
	users      *service.UserService
	tokens     *service.TokenService
	sessions   *service.SessionService
	interviews *service.InterviewService
	openAI     *service.OpenAIService
	queries    *sqlc.Queries
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg        *config.Config
	Users      *service.UserService
	Tokens     *service.TokenService
	Sessions   *service.SessionService
	Interviews *service.InterviewService
	OpenAI     *service.OpenAIService
	Queries    *sqlc.Queries
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:        deps.Cfg,
		users:      deps.Users,
		tokens:     deps.Tokens,
		sessions:   deps.Sessions,
		interviews: deps.Interviews,
		openAI:     deps.OpenAI,
		queries:    deps.Queries,
	}
}

// Register wires all routes onto the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", h.handleHealth)

	api := r.Group("/api")
	api.POST("/auth/signup", h.handleSignup)
	api.POST("/auth/login", h.handleLogin)

	authed := api.Group("")
	authed.Use(middleware.Auth(h.tokens, h.users))
	authed.GET("/me", h.handleMe)
	authed.GET("/profile", h.handleGetProfile)
	authed.PUT("/profile", h.handleUpdateProfile)
	authed.GET("/roles", h.handleListRoles)
	authed.GET("/roles/:id/questions", h.handleRoleQuestions)
	authed.GET("/sessions", h.handleListSessions)
	authed.POST("/sessions", h.handleStartSession)
	authed.DELETE("/sessions/:id", h.handleDeleteSession)
	authed.GET("/sessions/:id/messages", h.handleSessionMessages)
	authed.POST("/sessions/:id/messages", middleware.RateLimit(h.queries), h.handleAnswer)
	authed.POST("/chat-ai", h.handleChatAI)
	authed.POST("/generate-question", h.handleGenerateQuestion)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

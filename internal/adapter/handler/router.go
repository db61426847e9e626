package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/infrastructure/http/middleware"
	"github.com/aura-ai/aura-backend/internal/usecase/auth"
	"github.com/aura-ai/aura-backend/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	authService     *auth.Service
	authHandler     *Auth
	boardHandler    *Board
	meetingHandler  *Meeting
	documentHandler *Document
	settingsHandler *Settings
	adminHandler    *Admin
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authService *auth.Service,
	authHandler *Auth,
	boardHandler *Board,
	meetingHandler *Meeting,
	documentHandler *Document,
	settingsHandler *Settings,
	adminHandler *Admin,
) *Router {
	return &Router{
		cfg:             cfg,
		authService:     authService,
		authHandler:     authHandler,
		boardHandler:    boardHandler,
		meetingHandler:  meetingHandler,
		documentHandler: documentHandler,
		settingsHandler: settingsHandler,
		adminHandler:    adminHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	requireAuth := middleware.EchoAuth(rt.authService)

	rt.setupAuthRoutes(v1, requireAuth)
	rt.setupSettingsRoutes(v1, requireAuth)
	rt.setupBoardRoutes(v1, requireAuth)
	rt.setupMeetingRoutes(v1, requireAuth)
	rt.setupDocumentRoutes(v1, requireAuth)
	rt.setupAdminRoutes(v1, requireAuth)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	authGroup := g.Group("/auth")

	authGroup.POST("/signup", rt.authHandler.Signup)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/google/login", rt.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", rt.authHandler.GoogleCallback)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, requireAuth)
}

// setupSettingsRoutes configures per-user settings routes
func (rt *Router) setupSettingsRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	settingsGroup := g.Group("/settings", requireAuth)

	settingsGroup.GET("", rt.settingsHandler.Get)
	settingsGroup.PUT("", rt.settingsHandler.Update)
}

// setupBoardRoutes configures the task dashboard routes
func (rt *Router) setupBoardRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	boardGroup := g.Group("/userload", requireAuth)

	boardGroup.GET("/boards", rt.boardHandler.ListBoards)
	boardGroup.GET("/tasks", rt.boardHandler.GetTasks)
	boardGroup.POST("/tasks", rt.boardHandler.CreateTask)
	boardGroup.POST("/tasks/toggle", rt.boardHandler.ToggleTask)
	boardGroup.POST("/refresh", rt.boardHandler.Refresh)
	boardGroup.DELETE("/view", rt.boardHandler.ReleaseView)
}

// setupMeetingRoutes configures meeting intelligence routes. Upload
// and conversion are admin surfaces; reading is available to every
// authenticated user within workspace limits.
func (rt *Router) setupMeetingRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	meetingGroup := g.Group("/meetings", requireAuth)
	adminOnly := middleware.RequirePersona(entities.PersonaAdmin)

	meetingGroup.POST("/upload", rt.meetingHandler.Upload, adminOnly)
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.GET("/:id/transcript", rt.meetingHandler.Transcript)
	meetingGroup.POST("/:id/convert-to-task", rt.meetingHandler.ConvertToTask, adminOnly)
}

// setupDocumentRoutes configures the document query routes
func (rt *Router) setupDocumentRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	docGroup := g.Group("/trans2actions", requireAuth)

	docGroup.POST("/query", rt.documentHandler.Query)
	docGroup.POST("/upload", rt.documentHandler.Upload)
	docGroup.GET("/documents", rt.documentHandler.List)
	docGroup.DELETE("/documents/:id", rt.documentHandler.Delete)
	docGroup.DELETE("/history", rt.documentHandler.ClearHistory)
}

// setupAdminRoutes configures admin-only routes
func (rt *Router) setupAdminRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	adminGroup := g.Group("/admin", requireAuth, middleware.RequirePersona(entities.PersonaAdmin))

	adminGroup.POST("/assign-task", rt.adminHandler.AssignTask)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

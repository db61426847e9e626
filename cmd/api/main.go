package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/aura-ai/aura-backend/pkg/validator"

	"github.com/aura-ai/aura-backend/internal/adapter/handler"
	"github.com/aura-ai/aura-backend/internal/adapter/repository"
	"github.com/aura-ai/aura-backend/internal/infrastructure/cache"
	"github.com/aura-ai/aura-backend/internal/infrastructure/database"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/genai"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/oauth"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/trello"
	"github.com/aura-ai/aura-backend/internal/infrastructure/storage"
	"github.com/aura-ai/aura-backend/internal/usecase/auth"
	"github.com/aura-ai/aura-backend/internal/usecase/board"
	"github.com/aura-ai/aura-backend/internal/usecase/document"
	"github.com/aura-ai/aura-backend/internal/usecase/meeting"
	"github.com/aura-ai/aura-backend/internal/usecase/settings"
	"github.com/aura-ai/aura-backend/pkg/config"
	"github.com/aura-ai/aura-backend/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize object storage
	log.Println("📦 Connecting to MinIO...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	conversationRepo := repository.NewConversationRepository(db)

	// Initialize OAuth provider
	log.Println("🔐 Initializing OAuth provider...")
	googleProvider := oauth.NewGoogleProvider(
		cfg.OAuth.Google.ClientID,
		cfg.OAuth.Google.ClientSecret,
		cfg.OAuth.Google.RedirectURL,
	)

	// Initialize state manager for CSRF protection
	log.Println("🔒 Initializing state manager...")
	stateManager := oauth.NewStateManager(cache.NewMemoryStore())

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize auth service
	log.Println("✨ Initializing auth service...")
	authService := auth.NewService(
		userRepo,
		sessionRepo,
		googleProvider,
		stateManager,
		jwtManager,
	)

	// Initialize board sync components
	log.Println("📋 Initializing board sync...")
	trelloClient := trello.NewClient(cfg.Board.BaseURL, cfg.Board.RequestTimeout)
	snapshotStore := cache.NewSnapshotStore(redisClient, cfg.Board.SnapshotTTL)

	// Initialize text generation client
	log.Println("🤖 Initializing generation client...")
	genaiClient := genai.NewClient(&cfg.Generation)

	// Initialize services
	log.Println("⚡ Initializing services...")
	boardService := board.NewService(trelloClient, snapshotStore, genaiClient, logger)
	meetingService := meeting.NewService(meetingRepo, boardService, genaiClient, logger)
	documentService := document.NewService(documentRepo, meetingRepo, conversationRepo, minioClient, genaiClient, logger)
	settingsService := settings.NewService(userRepo, boardService, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	boardHandler := handler.NewBoard(boardService, logger)
	meetingHandler := handler.NewMeeting(meetingService, logger)
	documentHandler := handler.NewDocument(documentService, logger)
	settingsHandler := handler.NewSettings(settingsService, logger)
	adminHandler := handler.NewAdmin(boardService, logger)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		authService,
		authHandler,
		boardHandler,
		meetingHandler,
		documentHandler,
		settingsHandler,
		adminHandler,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

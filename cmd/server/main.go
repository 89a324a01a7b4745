package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	agentapp "github.com/artistai/backend/internal/application/agent"
	bookingapp "github.com/artistai/backend/internal/application/booking"
	channelapp "github.com/artistai/backend/internal/application/channel"
	crmapp "github.com/artistai/backend/internal/application/crm"
	dashboardapp "github.com/artistai/backend/internal/application/dashboard"
	financeapp "github.com/artistai/backend/internal/application/finance"
	messagingapp "github.com/artistai/backend/internal/application/messaging"
	rosterapp "github.com/artistai/backend/internal/application/roster"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/infrastructure/auth"
	"github.com/artistai/backend/internal/infrastructure/automation"
	"github.com/artistai/backend/internal/infrastructure/cache"
	"github.com/artistai/backend/internal/infrastructure/config"
	"github.com/artistai/backend/internal/infrastructure/evolution"
	"github.com/artistai/backend/internal/infrastructure/logger"
	"github.com/artistai/backend/internal/infrastructure/persistence"
	"github.com/artistai/backend/internal/interfaces/http/handler"
	"github.com/artistai/backend/internal/interfaces/http/middleware"
	"github.com/artistai/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting ArtistAI Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	artistRepo := persistence.NewGormArtistRepository(db.DB)
	contractorRepo := persistence.NewGormContractorRepository(db.DB)
	stageRepo := persistence.NewGormStageRepository(db.DB)
	noteRepo := persistence.NewGormNoteRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)
	conversationRepo := persistence.NewGormConversationRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)
	goalRepo := persistence.NewGormGoalRepository(db.DB)
	budgetRepo := persistence.NewGormBudgetRepository(db.DB)
	instanceRepo := persistence.NewGormInstanceRepository(db.DB)
	agentConfigRepo := persistence.NewGormAgentConfigRepository(db.DB)
	promptVersionRepo := persistence.NewGormPromptVersionRepository(db.DB)

	// Webhook redelivery dedup store. Redis when reachable, otherwise
	// an in-process store that only protects a single instance.
	var dedupStore messaging.IdempotencyStore
	redisStore, err := cache.NewRedisIdempotencyStore(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory dedup store", zap.Error(err))
		dedupStore = cache.NewInMemoryIdempotencyStore()
	} else {
		dedupStore = redisStore
	}
	defer func() {
		if err := dedupStore.Close(); err != nil {
			log.Error("Error closing dedup store", zap.Error(err))
		}
	}()

	// External gateways
	evolutionClient := evolution.NewClient(cfg.Evolution, log)
	automationClient := automation.NewClient(cfg.Automation, log)
	jwtService := auth.NewJWTService(cfg.JWT)

	fallbackTenantID := uuid.Nil
	if cfg.Ingress.FallbackTenantID != "" {
		fallbackTenantID, err = uuid.Parse(cfg.Ingress.FallbackTenantID)
		if err != nil {
			log.Fatal("Invalid ingress.fallback_tenant_id", zap.Error(err))
		}
	}

	// Initialize application services
	artistService := rosterapp.NewArtistService(artistRepo)
	contractorService := crmapp.NewContractorService(contractorRepo, stageRepo)
	stageService := crmapp.NewStageService(stageRepo, contractorRepo)
	noteService := crmapp.NewNoteService(noteRepo, contractorRepo)
	eventService := bookingapp.NewEventService(eventRepo, artistRepo, contractorRepo)
	conversationService := messagingapp.NewConversationService(conversationRepo, messageRepo, contractorRepo)
	ingressService := messagingapp.NewIngressService(
		conversationService, messageRepo, instanceRepo,
		dedupStore, fallbackTenantID, cfg.Ingress.DedupTTL, log,
	)
	accountService := financeapp.NewAccountService(accountRepo)
	categoryService := financeapp.NewCategoryService(categoryRepo)
	transactionService := financeapp.NewTransactionService(ledgerRepo, categoryRepo, analyticsRepo)
	goalService := financeapp.NewGoalService(goalRepo, categoryRepo)
	budgetService := financeapp.NewBudgetService(budgetRepo, categoryRepo)
	instanceService := channelapp.NewInstanceService(instanceRepo, evolutionClient, log)
	agentConfigService := agentapp.NewConfigService(agentConfigRepo, promptVersionRepo, automationClient, log)
	dashboardService := dashboardapp.NewService(
		artistRepo, contractorRepo, stageRepo, eventRepo, analyticsRepo,
		ledgerRepo, conversationRepo, log,
	)

	// Initialize HTTP handlers
	artistHandler := handler.NewArtistHandler(artistService)
	contractorHandler := handler.NewContractorHandler(contractorService, noteService)
	stageHandler := handler.NewStageHandler(stageService)
	noteHandler := handler.NewNoteHandler(noteService)
	eventHandler := handler.NewEventHandler(eventService)
	conversationHandler := handler.NewConversationHandler(conversationService)
	webhookHandler := handler.NewWebhookHandler(ingressService, middleware.APIKeyAuth(cfg.Ingress.APIKey, log))
	financeHandler := handler.NewFinanceHandler(
		accountService, categoryService, transactionService, goalService, budgetService,
	)
	whatsappHandler := handler.NewWhatsAppHandler(instanceService)
	agentHandler := handler.NewAgentHandler(agentConfigService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	systemHandler := handler.NewSystemHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request id, panic recovery, request logging,
	// CORS, then JWT auth for everything the skip list does not cover
	engine.Use(middleware.RequestID())
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthWithConfig(jwtConfig))

	// Liveness endpoint outside API versioning
	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "ok"})
	})

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(artistHandler).
		Register(contractorHandler).
		Register(stageHandler).
		Register(noteHandler).
		Register(eventHandler).
		Register(conversationHandler).
		Register(webhookHandler).
		Register(financeHandler).
		Register(whatsappHandler).
		Register(agentHandler).
		Register(dashboardHandler).
		Register(systemHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

package app

import (
	"context"
	"fmt"

	"doulink_backend/database"
	"doulink_backend/internal/config"
	"doulink_backend/internal/handlers"
	"doulink_backend/internal/logger"
	"doulink_backend/internal/middleware"
	"doulink_backend/internal/payments"
	"doulink_backend/internal/pkg/email"
	"doulink_backend/internal/repositories"
	"doulink_backend/internal/routes"
	"doulink_backend/internal/services"
	"doulink_backend/internal/validator"
	"doulink_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB)

	startWorkers(context.Background(), serviceContainer, repositories.NewSubscriptionRepository(gormDB))

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	serviceContainer, provider := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, provider)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.AuthService)

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) (*services.ServiceContainer, payments.Provider) {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	otpRepo := repositories.NewOtpRepository(gormDB)
	contractRepo := repositories.NewContractRepository(gormDB)
	commentRepo := repositories.NewCommentRepository(gormDB)
	subscriptionRepo := repositories.NewSubscriptionRepository(gormDB)

	sender := email.NewGomailSender(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err := sender.Validate(); err != nil {
		logger.Warn("SMTP sender not fully configured, OTP delivery will fail", "error", err)
	}

	provider := payments.NewStripeProvider(payments.Config{
		SecretKey:      cfg.Stripe.SecretKey,
		WebhookSecret:  cfg.Stripe.WebhookSecret,
		AnnualPriceID:  cfg.Stripe.AnnualPriceID,
		MonthlyPriceID: cfg.Stripe.MonthlyPriceID,
		SuccessURL:     cfg.Stripe.SuccessURL,
		CancelURL:      cfg.Stripe.CancelURL,
	})
	if err := provider.Initialize(); err != nil {
		logger.Warn("Payment provider not configured, checkout is disabled", "error", err)
	}

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, otpRepo, cfg.JWT.Secret, cfg.JWT.TTL),
		OtpService:          services.NewOtpService(otpRepo, sender),
		ProfileService:      services.NewProfileService(profileRepo, userRepo),
		MatchingService:     services.NewMatchingService(profileRepo),
		ContractService:     services.NewContractService(contractRepo, profileRepo),
		CommentService:      services.NewCommentService(commentRepo, contractRepo, profileRepo),
		SubscriptionService: services.NewSubscriptionService(subscriptionRepo, userRepo, provider),
	}, provider
}

func initializeHandlers(sc *services.ServiceContainer, provider payments.Provider) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, sc.AuthService, sc.OtpService),
		ProfileHandler:      handlers.NewProfileHandler(base, sc.ProfileService),
		MatchingHandler:     handlers.NewMatchingHandler(base, sc.MatchingService),
		ContractHandler:     handlers.NewContractHandler(base, sc.ContractService),
		CommentHandler:      handlers.NewCommentHandler(base, sc.CommentService),
		PaymentHandler:      handlers.NewPaymentHandler(base, sc.SubscriptionService, provider),
		SubscriptionHandler: handlers.NewSubscriptionHandler(base, sc.SubscriptionService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return ginRouter
}

func startWorkers(ctx context.Context, sc *services.ServiceContainer, subscriptionRepo repositories.SubscriptionRepository) {
	otpWorker := workers.NewOtpCleanupWorker(sc.OtpService)
	if err := otpWorker.Start(); err != nil {
		logger.Error("Failed to start OTP cleanup worker", "error", err)
	}

	subscriptionWorker := workers.NewSubscriptionWorker(subscriptionRepo)
	subscriptionWorker.Start(ctx)
}

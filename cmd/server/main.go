package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"blogpilot/config"
	_ "blogpilot/docs"
	"blogpilot/internal/adapters/alimtalk"
	authadapter "blogpilot/internal/adapters/auth"
	"blogpilot/internal/adapters/email"
	"blogpilot/internal/adapters/llm"
	httpdelivery "blogpilot/internal/delivery/http"
	"blogpilot/internal/delivery/http/controllers"
	"blogpilot/internal/delivery/http/middleware"
	"blogpilot/internal/domain"
	"blogpilot/internal/repository/postgres"
	"blogpilot/internal/services"
)

// @title BlogPilot API
// @version 1.0
// @description Weekly blog draft confirmation workflow for subscribed businesses.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	customerRepo := postgres.NewCustomerRepository(db)
	draftRepo := postgres.NewDraftRepository(db)
	confRepo := postgres.NewConfirmationRepository(db)
	notifRepo := postgres.NewNotificationRepository(db)
	topicRepo := postgres.NewUsedTopicRepository(db)
	claimRepo := postgres.NewPhaseClaimRepository(db)

	generator := llm.NewGenerator(llm.Config{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.OpenAIModel,
	}, logger)

	var messenger domain.Messenger
	switch cfg.MessengerProvider {
	case "alimtalk":
		messenger = alimtalk.New(alimtalk.Config{
			AccessKey:    cfg.NCPAccessKey,
			SecretKey:    cfg.NCPSecretKey,
			ServiceID:    cfg.NCPServiceID,
			ChannelID:    cfg.KakaoChannelID,
			InitialCode:  cfg.AlimtalkInitialCode,
			ReminderCode: cfg.AlimtalkReminderCode,
		}, logger)
	default:
		mailer := email.NewMailer(email.MailerConfig{
			Provider:    cfg.EmailProvider,
			FromAddress: cfg.FromAddress,
			FromName:    cfg.FromName,
			SES: email.SESConfig{
				Region:          cfg.SESRegion,
				AccessKeyID:     cfg.SESAccessKeyID,
				SecretAccessKey: cfg.SESSecretAccessKey,
			},
		}, logger)
		messenger = email.NewMessenger(mailer, email.NewTemplateRenderer())
	}

	recorder := services.NewConfirmationRecorder(confRepo, logger)
	generation := services.NewGenerationPhase(draftRepo, topicRepo, claimRepo, generator, logger)
	initial := services.NewNotificationPhase(domain.NotificationInitial, draftRepo, confRepo, notifRepo, claimRepo, messenger, cfg.ServiceURL, logger)
	reminder := services.NewNotificationPhase(domain.NotificationReminder, draftRepo, confRepo, notifRepo, claimRepo, messenger, cfg.ServiceURL, logger)
	autoConfirm := services.NewAutoConfirmPhase(draftRepo, confRepo, claimRepo, recorder, logger)

	workflow := services.NewWorkflowService(customerRepo, generation, initial, reminder, autoConfirm, services.WorkflowConfig{
		Concurrency:     cfg.WorkflowConcurrency,
		CustomerTimeout: cfg.CustomerTimeout,
		Location:        cfg.Location(),
	}, logger)

	issuer, verifier := authadapter.NewJWTTokens(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(12)
	authService := services.NewAuthService(services.AdminAccount{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
		PasswordSalt: cfg.AdminPasswordSalt,
	}, hasher, issuer, cfg.TokenExpiry)

	customerService := services.NewCustomerService(customerRepo, logger)
	draftService := services.NewDraftService(draftRepo, topicRepo, logger)
	confirmPage := services.NewConfirmPageService(customerRepo, draftRepo, confRepo, recorder, logger)

	mux := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Auth:       controllers.NewAuthController(logger, authService),
		Customers:  controllers.NewCustomerController(logger, customerService, draftService, workflow),
		Workflow:   controllers.NewWorkflowController(logger, workflow),
		Confirm:    controllers.NewConfirmController(logger, confirmPage),
		Verifier:   verifier,
		CronSecret: cfg.CronSecret,
		Logger:     logger,
	})

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}

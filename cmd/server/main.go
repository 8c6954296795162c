package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sopdocs/internal/sop/config"
	"sopdocs/internal/sop/handler"
	"sopdocs/internal/sop/notify"
	"sopdocs/internal/sop/repository"
	"sopdocs/internal/sop/router"
	"sopdocs/internal/sop/scheduler"
	"sopdocs/internal/sop/security"
	"sopdocs/internal/sop/service"
	"sopdocs/internal/sop/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 3. Init Layers
	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db,
		cfg.DocumentsCollection,
		cfg.OperationsCollection,
		cfg.ApproversCollection,
		cfg.HistoryCollection,
	)

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}

	notifier := notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.NotifyEnabled)
	svc := service.NewService(repo, notifier, cfg.AutoApproveDays, cfg.NotifyRecipient)

	limiter := security.NewAttemptLimiter(cfg.AuthMaxAttempts, cfg.AuthAttemptWindow)
	approvers := service.NewApproverService(repo, limiter)
	svc.Assigner = approvers

	if err := approvers.EnsureDefaultApprover(context.Background(),
		cfg.DefaultApproverUsername, cfg.DefaultApproverPassword, cfg.DefaultApproverName); err != nil {
		logger.Warn("Failed to seed default approver", "error", err)
	}

	h := handler.NewHandler(svc, approvers)

	// 4. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h)

	// 5. Start Auto-Approval Sweeper
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	if cfg.SweeperEnabled {
		sweeper := scheduler.NewSweeper(repo, svc, cfg.AutoApproveDays, cfg.SweepInterval)
		go sweeper.Start(sweepCtx)
	} else {
		logger.Info("Auto-approval sweeper disabled")
	}

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopSweeper()

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}

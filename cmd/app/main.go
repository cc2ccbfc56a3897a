package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/managejob/backend/internal/api/http"
	"github.com/managejob/backend/internal/cache"
	"github.com/managejob/backend/internal/config"
	"github.com/managejob/backend/internal/db"
	"github.com/managejob/backend/internal/otp"
	"github.com/managejob/backend/internal/queue/asynqserver"
	"github.com/managejob/backend/internal/queue/client"
	"github.com/managejob/backend/internal/repository"
	"github.com/managejob/backend/internal/server"
	"github.com/managejob/backend/internal/service"
	"github.com/managejob/backend/internal/worker"
	"github.com/managejob/backend/pkg/auth"
	"github.com/managejob/backend/pkg/email/smtp"
	"github.com/managejob/backend/pkg/hash"
	"github.com/managejob/backend/pkg/logger"
	otpgen "github.com/managejob/backend/pkg/otp"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("starting backend api", zap.String("env", cfg.Env))

	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Fatal("redis connect problem", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Fatal("smtp sender creation failed", zap.Error(err))
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Fatal("auth manager creation failed", zap.Error(err))
	}

	otpStore := otp.NewStore(cfg.Auth.VerificationCodeTTL)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go otpStore.Run(sweepCtx, cfg.Auth.VerificationCodeTTL)

	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpgen.NewCryptoGenerator(),
		OtpStore:     otpStore,
		EmailSender:  emailSender,
		Redis:        redisClient,
		Repos:        repos,
	})

	// Background queue: worker pool plus the shared enqueue client.
	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	queueServer, queueMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := queueServer.Run(queueMux); err != nil {
			appLogger.Error("asynq server stopped", zap.Error(err))
		}
	}()

	queueClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer func() {
		if err := queueClient.Close(); err != nil {
			appLogger.Error("error when closing queue client", zap.Error(err))
		}
	}()
	restoreClient := client.SetClient(queueClient)
	defer restoreClient()

	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	queueServer.Shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}

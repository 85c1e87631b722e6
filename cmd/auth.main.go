package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"user-auth-service/internal/config"
	"user-auth-service/internal/handler"
	"user-auth-service/internal/repository"
	"user-auth-service/internal/router"
	"user-auth-service/internal/service"
	"user-auth-service/internal/validation"
	"user-auth-service/pkg/jwtutil"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	// db connection
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("connect mongo", zap.Error(err))
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(startCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Fatal("mongo ping", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(client.Database(cfg.MongoDB))
	if err := userRepo.EnsureIndexes(startCtx); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	validator, err := validation.New()
	if err != nil {
		_ = client.Disconnect(context.Background())
		logger.Fatal("compile payload schemas", zap.Error(err))
	}

	// service & handler wiring
	tokens := jwtutil.NewGenerator([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, validator, tokens, logger)
	authHandler := handler.NewAuthHandler(authSvc, logger)

	r := chi.NewRouter()
	router.SetupRoutes(r, authHandler, logger)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// run server in goroutine
	go func() {
		logger.Info("auth REST server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect", zap.Error(err))
	}
}

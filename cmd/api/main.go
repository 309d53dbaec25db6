package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/muteeurrehman28/Freelancers-Network/internal/app"
	"github.com/muteeurrehman28/Freelancers-Network/internal/config"
	"github.com/muteeurrehman28/Freelancers-Network/internal/database"
	apphttp "github.com/muteeurrehman28/Freelancers-Network/internal/http"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/handlers"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/metrics"
	httpmw "github.com/muteeurrehman28/Freelancers-Network/internal/http/middleware"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/response"
	"github.com/muteeurrehman28/Freelancers-Network/internal/observability"
	"github.com/muteeurrehman28/Freelancers-Network/internal/repository/postgres"
	"github.com/muteeurrehman28/Freelancers-Network/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	jobService := app.NewJobService(jobRepo, userRepo, logger)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, userRepo, logger)
	commentService := app.NewCommentService(commentRepo, jobRepo, userRepo, logger)
	bookmarkService := app.NewBookmarkService(bookmarkRepo, jobRepo, logger)
	userService := app.NewUserService(userRepo, jobRepo)

	var limiter httpmw.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		limiter = httpmw.NewRedisLimiter(client)
		logger.Info("using redis rate limiter", zap.String("addr", cfg.RedisAddr))
	} else {
		limiter = httpmw.NewMemoryLimiter()
	}

	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, limiter)
	commentHandler := handlers.NewCommentHandler(commentService, limiter)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	userHandler := handlers.NewUserHandler(userService)
	middleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:         jobHandler,
		ApplicationHandler: applicationHandler,
		CommentHandler:     commentHandler,
		BookmarkHandler:    bookmarkHandler,
		UserHandler:        userHandler,
		AuthMiddleware:     middleware,
		Metrics:            collector,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rentora/rentora/internal/application"
	applicationStore "github.com/rentora/rentora/internal/application/store"
	"github.com/rentora/rentora/internal/cache"
	"github.com/rentora/rentora/internal/config"
	conversationStore "github.com/rentora/rentora/internal/conversation/store"
	"github.com/rentora/rentora/internal/database"
	"github.com/rentora/rentora/internal/email"
	rentoraHttp "github.com/rentora/rentora/internal/http"
	applicationHandler "github.com/rentora/rentora/internal/http/application"
	notificationHandler "github.com/rentora/rentora/internal/http/notification"
	propertyHandler "github.com/rentora/rentora/internal/http/property"
	"github.com/rentora/rentora/internal/notification"
	notificationStore "github.com/rentora/rentora/internal/notification/store"
	"github.com/rentora/rentora/internal/property"
	propertyStore "github.com/rentora/rentora/internal/property/store"
	"github.com/rentora/rentora/internal/task"
	userStore "github.com/rentora/rentora/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redis, err := database.NewRedis(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redis.Close()

	var mailer application.Mailer = email.LogMailer{}

	if cfg.Email.Enabled {
		ses, err := email.NewSES(context.Background(), cfg.Email.Region, cfg.Email.Sender)
		if err != nil {
			slog.Error("failed to set up ses", "error", err)
			os.Exit(1)
		}

		mailer = ses
	}

	var (
		properties    = propertyStore.New(db)
		users         = userStore.New(db)
		conversations = conversationStore.New(db)
		applications  = applicationStore.New(db)
		notifications = notificationStore.New(db)
	)

	var (
		propertyService     = property.NewService(properties, cache.New(redis), cfg.Redis.TTL)
		notificationService = notification.NewService(notifications)
		applicationService  = application.NewService(application.ServiceDeps{
			Repo:          applications,
			Properties:    properties,
			Users:         users,
			Conversations: conversations,
			Notifier:      notificationService,
			Mailer:        mailer,
			Scorer:        application.NewScorer(application.NewMockCreditBureau(150 * time.Millisecond)),
			Tasks:         task.NewBackground(cfg.Server.Timeout),
		})
	)

	router := rentoraHttp.New(rentoraHttp.RouterConfig{
		Properties:         propertyHandler.NewHandler(propertyService),
		Applications:       applicationHandler.NewHandler(applicationService),
		Notifications:      notificationHandler.NewHandler(notificationService),
		JWTSecret:          cfg.Auth.JWTSecret,
		RateLimitPerSecond: cfg.RateLimit.PerSecond,
		RateLimitBurst:     cfg.RateLimit.Burst,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

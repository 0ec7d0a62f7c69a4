// Command server runs the account pages of the bookmarks site.
//
// @title        Bookmarks Account
// @version      1.0
// @description  Login, dashboard and profile edit pages of the bookmarks site.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bookmarks/account/internal/api"
	"github.com/bookmarks/account/internal/api/handler"
	"github.com/bookmarks/account/internal/api/middleware"
	"github.com/bookmarks/account/internal/core/service"
	mongodb "github.com/bookmarks/account/internal/infrastructure/db/mongo"
	redisdb "github.com/bookmarks/account/internal/infrastructure/db/redis"
	"github.com/bookmarks/account/internal/infrastructure/storage"
	"github.com/bookmarks/account/internal/pkg/config"
	"github.com/bookmarks/account/internal/web"
	"github.com/bookmarks/account/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "account"})
		bootLog := logger.Get()
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "account",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create mongodb indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	media, err := storage.NewMediaStore(ctx, storage.Config{
		Bucket:       cfg.Media.Bucket,
		Region:       cfg.Media.Region,
		Endpoint:     cfg.Media.Endpoint,
		AccessKey:    cfg.Media.AccessKey,
		SecretKey:    cfg.Media.SecretKey,
		UsePathStyle: cfg.Media.UsePathStyle,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure media store")
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	users := mongodb.NewUserRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	events := mongodb.NewLoginEventRepository(db)

	e := api.NewRouter(api.Deps{
		Logger:   logger.Component("http"),
		Renderer: renderer,
		Auth:     service.NewAuthService(users, events, logger.Component("auth")),
		Accounts: service.NewAccountService(users, profiles, media, logger.Component("account")),
		Sessions: redisdb.NewSessionStore(rdb, cfg.Session.TTL),
		Cookie: &middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secret: []byte(cfg.SecretKey),
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		LoginURL:      cfg.LoginURL,
		MaxPhotoBytes: cfg.Media.MaxUploadBytes,
		Checks: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error {
				return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
			},
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
			"media": media.Ping,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/mgfilms/site-service/internal/cache"
	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/events"
	"github.com/mgfilms/site-service/internal/http/router"
	"github.com/mgfilms/site-service/internal/logger"
	"github.com/mgfilms/site-service/internal/media"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/storage/sqlstore"
	"github.com/mgfilms/site-service/internal/uploads"
	"github.com/mgfilms/site-service/internal/websocket"
)

// @title           MG Films Site API
// @version         1.0
// @description     Content, inquiries, SEO and uploads for the MG Films website.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	// load config
	cfg := config.MustLoad()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// database setup
	db, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()
	slog.Info("Connected to database", slog.String("driver", cfg.Database.Driver))

	if err := db.CreateTables(ctx); err != nil {
		log.Fatal("Failed to create tables: ", err)
	}
	if cfg.Admin.SeedOnStart {
		if err := db.SeedDefaults(ctx, cfg.Admin); err != nil {
			log.Fatal("Failed to seed defaults: ", err)
		}
	}

	// redis is optional; without it there is no cache and no rate limiting
	var store storage.Storage = db
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis unreachable, continuing; cache reads will fall through", slog.String("error", err.Error()))
		} else {
			slog.Info("Connected to Redis", slog.String("address", cfg.Redis.Address))
		}
		store = cache.NewService(db, redisClient)
	} else {
		slog.Info("Redis not configured, cache and rate limiting disabled")
	}

	backend, err := uploads.NewBackend(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize upload storage: ", err)
	}

	resolver, err := media.NewResolver(cfg.Media.BaseURL, cfg.Media.FallbackVideoID)
	if err != nil {
		log.Fatal("Invalid media config: ", err)
	}

	hub := websocket.NewHub()
	go hub.Run(ctx)

	handler := router.New(router.Deps{
		Config:    cfg,
		Store:     store,
		Redis:     redisClient,
		Uploads:   uploads.NewService(backend, cfg.Upload),
		Resolver:  resolver,
		Hub:       hub,
		Publisher: events.NewEventPublisher(hub),
	})

	server := http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	slog.Info("server started", slog.String("address", cfg.HTTPServer.Address))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}

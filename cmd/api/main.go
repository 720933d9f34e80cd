package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mkurbatov/social-network-api/internal/auth"
	"github.com/mkurbatov/social-network-api/internal/config"
	"github.com/mkurbatov/social-network-api/internal/database"
	"github.com/mkurbatov/social-network-api/internal/handlers"
	"github.com/mkurbatov/social-network-api/internal/logger"
	"github.com/mkurbatov/social-network-api/internal/middleware"
	"github.com/mkurbatov/social-network-api/internal/realtime"
	"github.com/mkurbatov/social-network-api/internal/server"
	"github.com/mkurbatov/social-network-api/internal/service"
	"github.com/mkurbatov/social-network-api/internal/store"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	stores := store.New(db.GetDB())
	tokens := auth.NewManager(cfg.JWTSecret)
	blacklist := auth.NewBlacklist()
	hub := realtime.NewHub(log)

	users := service.NewUserService(stores.Users, tokens, blacklist, log)
	relationships := service.NewRelationshipService(stores.Users, stores.Posts, stores.Follows, stores.Likes, hub, log)
	feed := service.NewFeedService(stores.Posts, stores.Likes, log)
	posts := service.NewPostService(stores.Posts, stores.Likes, hub, log)

	handler := handlers.New(users, relationships, feed, posts, hub, log)
	authMW := middleware.Auth(tokens, blacklist)

	srv := server.New(cfg, handler, authMW, db.Health)

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("forced shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Warn("error closing database", zap.Error(err))
	}
}

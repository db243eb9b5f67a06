package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/config"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository/redisstore"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/usecase"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/httpserver"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/router"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session/provider/redisauth"
	syncer "github.com/VJCTHEGREA8/the-fourth-wall-app/internal/sync"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/youtube"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting The Fourth Wall...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Redis: %s", cfg.Redis.Addr)

	// 3. Document store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error(ctx, "Failed to reach redis: ", err)
		return
	}
	defer redisClient.Close()

	repo := redisstore.New(redisClient, logger)

	// 4. Collection sync, one per collection so failures stay independent
	articles := syncer.New(logger, repo, model.CollectionArticles)
	if err := articles.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start articles sync: ", err)
		return
	}
	defer articles.Stop()

	videos := syncer.New(logger, repo, model.CollectionVideos)
	if err := videos.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start videos sync: ", err)
		return
	}
	defer videos.Stop()

	// 5. Session gate and identity provider
	provider := redisauth.New(redisClient, logger, time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute)

	gate := session.NewGate(logger, provider)
	gate.Start()
	defer gate.Stop()

	nav := router.NewNavigator(logger, gate)
	nav.Start()
	defer nav.Stop()

	// Replay the persisted session so the gate leaves Unknown.
	if err := provider.Restore(ctx); err != nil {
		logger.Warnf(ctx, "Session restore failed, continuing anonymous: %v", err)
	}

	// 6. Editor and resolver
	editor := usecase.New(logger, repo)

	resolver, err := youtube.NewCachedResolver(cfg.Resolver.CacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to create resolver cache: ", err)
		return
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Editor:         editor,
		Articles:       articles,
		Videos:         videos,
		Resolver:       resolver,
		AuthProvider:   provider,
		TokenValidator: provider,
		Gate:           gate,
		AuthRatePerMin: cfg.Auth.RateLimitPerMin,
		Navigator:      nav,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

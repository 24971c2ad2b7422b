// ================== cmd/api/main.go ==================
//
// @title Skincare Routines API
// @version 1.0
// @description Accounts, a product catalog and per-user skincare routines with brand statistics
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	docs "github.com/xyz-asif/skincare/docs"
	"github.com/xyz-asif/skincare/internal/config"
	"github.com/xyz-asif/skincare/internal/database"
	"github.com/xyz-asif/skincare/internal/pkg/cache"
	"github.com/xyz-asif/skincare/internal/pkg/logger"
	"github.com/xyz-asif/skincare/internal/pkg/metrics"
	"github.com/xyz-asif/skincare/internal/pkg/ratelimit"
	"github.com/xyz-asif/skincare/internal/pkg/token"
	"github.com/xyz-asif/skincare/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	logger.SetGlobal(log)
	defer logger.Sync()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("connect to MongoDB", zap.Error(err))
	}
	defer db.Disconnect(context.Background())

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	err = routes.EnsureIndexes(indexCtx, db.Database)
	cancelIndexes()
	if err != nil {
		log.Fatal("create indexes", zap.Error(err))
	}

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL())
	if err != nil {
		log.Fatal("token manager", zap.Error(err))
	}

	var statsCache cache.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		redisCtx, cancelRedis := context.WithTimeout(context.Background(), 5*time.Second)
		rc, err := cache.NewRedis(redisCtx, cfg.RedisURL)
		cancelRedis()
		if err != nil {
			// the cache is an optimisation; run without it
			log.Warn("redis unavailable, stats cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			statsCache = rc
		}
	}

	done := make(chan struct{})
	defer close(done)
	authLimiter := ratelimit.New(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	authLimiter.StartCleanup(time.Minute, 10*time.Minute, done)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.NewRouter(routes.Dependencies{
		Config:      cfg,
		DB:          db.Database,
		Health:      db,
		Tokens:      tokens,
		Cache:       statsCache,
		Metrics:     metrics.New(),
		Logger:      log,
		AuthLimiter: authLimiter,
	})
	if err != nil {
		log.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/xyz-asif/skincare/internal/config"
	"github.com/xyz-asif/skincare/internal/features/auth"
	"github.com/xyz-asif/skincare/internal/features/products"
	"github.com/xyz-asif/skincare/internal/features/routines"
	"github.com/xyz-asif/skincare/internal/middleware"
	"github.com/xyz-asif/skincare/internal/pkg/cache"
	"github.com/xyz-asif/skincare/internal/pkg/metrics"
	"github.com/xyz-asif/skincare/internal/pkg/ratelimit"
	"github.com/xyz-asif/skincare/internal/pkg/response"
	"github.com/xyz-asif/skincare/internal/pkg/token"
)

// Pinger reports database reachability for /health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are built once in main and shared by every feature.
type Dependencies struct {
	Config      *config.Config
	DB          *mongo.Database
	Health      Pinger
	Tokens      *token.Manager
	Cache       cache.Cache
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	AuthLimiter *ratelimit.RateLimiter
}

// EnsureIndexes creates every index the stores rely on. Startup must not
// continue if this fails.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := auth.NewRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return routines.NewRepository(db).EnsureIndexes(ctx)
}

// NewRouter assembles middleware, infrastructure endpoints and all features.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.CORS(cfg.FrontendURL))
	router.Use(deps.Metrics.Middleware())
	router.Use(middleware.Deadline(cfg.RequestTimeout))

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found", "ROUTE_NOT_FOUND")
	})

	router.GET("/health", healthHandler(deps.Health))
	router.GET("/metrics", deps.Metrics.Handler())
	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	requireAuth := middleware.Auth(deps.Tokens)
	root := &router.RouterGroup

	accounts, err := auth.NewService(auth.NewRepository(deps.DB), deps.Tokens)
	if err != nil {
		return nil, fmt.Errorf("build auth service: %w", err)
	}
	auth.RegisterRoutes(root, auth.NewHandler(accounts), ratelimit.Middleware(deps.AuthLimiter))

	products.RegisterRoutes(root, products.NewHandler(products.NewRepository(deps.DB)), requireAuth)

	routineHandler := routines.NewHandler(
		routines.NewRepository(deps.DB),
		deps.Cache,
		cfg.StatsCacheTTL,
		deps.Metrics,
	)
	routines.RegisterRoutes(root, routineHandler, requireAuth)

	return router, nil
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":   "ok",
			"database": "up",
			"time":     time.Now().Unix(),
		}
		if err := db.Ping(c.Request.Context()); err != nil {
			body["status"] = "degraded"
			body["database"] = "down"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		response.OK(c, body)
	}
}

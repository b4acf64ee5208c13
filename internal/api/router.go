package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devassignment/member-service/internal/api/handler"
	"github.com/devassignment/member-service/internal/api/middleware"
	"github.com/devassignment/member-service/internal/core/domain"
	"github.com/devassignment/member-service/internal/core/ports"
	"github.com/devassignment/member-service/internal/core/service"
	mongodb "github.com/devassignment/member-service/internal/infrastructure/db/mongo"
	redisdb "github.com/devassignment/member-service/internal/infrastructure/db/redis"
	"github.com/devassignment/member-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the member service then runs without a cache.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("member_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)

	var cache ports.MemberCache
	if rdb != nil {
		cache = redisdb.NewMemberCache(rdb, cfg.Redis.CacheTTL)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	memberService := service.NewMemberService(memberRepo, cache, log)

	// The gate runs on every request; it attaches identity but never rejects.
	e.Use(middleware.Authenticate(tokens, userRepo, log))

	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)

	// --- Routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	anyRole := middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	members := v1.Group("/members")
	members.GET("", memberHandler.List, anyRole)
	members.GET("/:id", memberHandler.GetByID, anyRole)
	members.POST("", memberHandler.Create, adminOnly)
	members.PUT("/:id", memberHandler.Update, adminOnly)
	members.DELETE("/:id", memberHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// Command api runs the member service HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devassignment/member-service/internal/api"
	"github.com/devassignment/member-service/internal/core/domain"
	mongodb "github.com/devassignment/member-service/internal/infrastructure/db/mongo"
	redisdb "github.com/devassignment/member-service/internal/infrastructure/db/redis"
	"github.com/devassignment/member-service/internal/pkg/config"
	"github.com/devassignment/member-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if err := seedUsers(ctx, mongodb.NewUserRepository(db), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("account seeding failed")
	}

	// The cache is an optimization: an unreachable Redis downgrades the
	// service to uncached reads instead of refusing to boot.
	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without member cache")
		rdb = nil
	} else {
		defer func() { _ = rdb.Close() }()
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting member service")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedUsers provisions the default accounts when they do not exist yet.
// Accounts with empty credentials are skipped.
func seedUsers(ctx context.Context, users *mongodb.UserRepository, cfg *config.Config, log zerolog.Logger) error {
	accounts := []struct {
		username, password, role string
	}{
		{cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, domain.RoleAdmin},
		{cfg.Seed.UserUsername, cfg.Seed.UserPassword, domain.RoleUser},
	}

	for _, a := range accounts {
		if a.username == "" || a.password == "" {
			continue
		}
		if _, err := users.FindByUsername(ctx, a.username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user := &domain.User{
			ID:           uuid.NewString(),
			Username:     a.username,
			PasswordHash: string(hash),
			Role:         a.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, user); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return err
		}
		log.Info().Str("username", a.username).Str("role", a.role).Msg("seeded account")
	}
	return nil
}

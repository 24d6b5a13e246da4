package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coregx/forumhub"
	"github.com/coregx/forumhub/adapters/relica"
	"github.com/coregx/forumhub/auth"
	"github.com/coregx/forumhub/cmd/forumhub-server/internal/config"
	"github.com/coregx/forumhub/retry"
)

// app bundles the dependencies shared by the commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sql.DB
	repos  *relica.Repositories
	auth   *forumhub.AuthService
	topics *forumhub.TopicService
}

// newApp loads configuration, connects to the database and builds the services.
// The caller must call close.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	strategy := retry.DefaultStrategy()
	strategy.MaxAttempts = cfg.Database.ConnectAttempts
	logger.Debug("Database connect strategy", zap.String("schedule", strategy.Schedule()))
	err = retry.Do(ctx, strategy, db.PingContext, func(attempt int, delay time.Duration, err error) {
		logger.Warn("Database not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connection established",
		zap.String("driver", cfg.Database.Driver),
		zap.String("prefix", cfg.Database.Prefix),
	)

	repos := relica.NewRepositoriesWithPrefix(db, cfg.Database.Driver, cfg.Database.Prefix)
	libLogger := forumhub.NewZapLogger(logger)

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret: cfg.Auth.Secret,
		Issuer: cfg.Auth.Issuer,
		TTL:    cfg.Auth.TTL,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	authSvc, err := forumhub.NewAuthService(
		forumhub.WithAuthUsers(repos.User),
		forumhub.WithAuthTokens(tokens),
		forumhub.WithAuthLogger(libLogger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	topicSvc, err := forumhub.NewTopicService(
		forumhub.WithTopicRepositories(repos.Topic, repos.User),
		forumhub.WithTopicLogger(libLogger),
		forumhub.WithTopicNotifications(forumhub.NewLoggingNotificationService(libLogger)),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		repos:  repos,
		auth:   authSvc,
		topics: topicSvc,
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("Failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// newLogger builds a production or development zap logger at the configured level.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

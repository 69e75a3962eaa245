package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/letieu/idea-board/config"
	"github.com/letieu/idea-board/internal/coordinator"
	"github.com/letieu/idea-board/internal/ideaapi"
	"github.com/letieu/idea-board/internal/logger"
	"github.com/letieu/idea-board/internal/taxonomy"
)

// App is everything a command needs.
type App struct {
	Config      *config.Config
	Logger      *zap.SugaredLogger
	Coordinator *coordinator.Coordinator
	Guard       *VoteGuard
}

// Builder creates the App on first use.
type Builder func() (*App, error)

// Bootstrap wires the production App from config.
func Bootstrap() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	transport, err := ideaapi.NewTransport(cfg.API.ClientProfile, cfg.API.TimeoutSecs)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}
	client := ideaapi.NewClient(transport, cfg.API.BaseURL, log)

	coord := coordinator.New(client, taxonomy.Default(),
		coordinator.WithLogger(log),
		coordinator.WithLimits(cfg.Feed.PopularLimit, cfg.Feed.RecentLimit),
	)

	log.Debugw("app ready", "api", cfg.API.BaseURL, "profile", cfg.API.ClientProfile)
	return &App{Config: cfg, Logger: log, Coordinator: coord, Guard: NewVoteGuard()}, nil
}

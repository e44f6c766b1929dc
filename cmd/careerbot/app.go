package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/httpapi"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/metrics"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/profiler"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/storage"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/pkg/config"
)

// app holds the components shared by every command.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    storage.Storage
	profiler profiler.Profiler
	registry *prometheus.Registry
	sessions *conversation.Registry
}

// withApp loads the config, builds the app and runs fn. A non-empty
// logLevel overrides the configured one.
func withApp(ctx context.Context, logLevel string, fn func(context.Context, *app) error) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start", zap.Error(err))
		return err
	}
	defer a.store.Close()

	return fn(ctx, a)
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = level
	return zcfg.Build()
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	store := storage.NewMemoryStorage()

	var p profiler.Profiler
	switch cfg.Profiler.Mode {
	case config.ModeRemote:
		logger.Info("Using remote profiler", zap.String("base_url", cfg.Profiler.BaseURL))
		remote := profiler.NewHTTPProfiler(cfg.Profiler.BaseURL, cfg.Profiler.Timeout, logger)
		if cfg.Profiler.WaitReady > 0 {
			if _, err := profiler.WaitHealthy(ctx, remote, cfg.Profiler.WaitReady, logger); err != nil {
				store.Close()
				return nil, err
			}
		}
		p = remote
	default:
		logger.Info("Using mock profiler", zap.Float64("latency_scale", cfg.Mock.LatencyScale))
		p = profiler.NewMockProfiler(store, logger, profiler.WithLatencyScale(cfg.Mock.LatencyScale))
	}
	p = profiler.NewInstrumented(p, m)

	sessions := conversation.NewRegistry(p, store, logger, m,
		conversation.WithStaticDelay(cfg.Chat.StaticDelay),
		conversation.WithRequestTimeout(cfg.Chat.RequestTimeout))

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		profiler: p,
		registry: registry,
		sessions: sessions,
	}, nil
}

func (a *app) server() *httpapi.Server {
	return httpapi.NewServer(a.profiler, a.sessions, a.logger)
}

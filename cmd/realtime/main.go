package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	audioimpl "github.com/foxseedlab/honyakun/external/audio"
	configloader "github.com/foxseedlab/honyakun/external/config"
	displayimpl "github.com/foxseedlab/honyakun/external/display"
	historyimpl "github.com/foxseedlab/honyakun/external/history"
	transcriberimpl "github.com/foxseedlab/honyakun/external/transcriber"
	translatorimpl "github.com/foxseedlab/honyakun/external/translator"
	"github.com/foxseedlab/honyakun/internal/config"
	"github.com/foxseedlab/honyakun/internal/session"
	"github.com/samber/do/v2"
)

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "language", cfg.LanguageCode, "target", cfg.TargetLanguage)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching realtime session")
	runSession(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config loading failed", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateRealtime(); err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	audioimpl.RegisterDI(injector)
	transcriberimpl.RegisterDI(injector)
	translatorimpl.RegisterDI(injector)
	displayimpl.RegisterDI(injector)
	historyimpl.RegisterDI(injector)
	session.RegisterDI(injector)

	return injector
}

func runSession(injector do.Injector) {
	orchestrator, err := do.Invoke[*session.Orchestrator](injector)
	if err != nil {
		slog.Error("failed to resolve session orchestrator", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := orchestrator.Run(ctx); err != nil {
		slog.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}

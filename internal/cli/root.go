// Package cli is the operational surface of the prompt engine: every public
// engine operation is reachable as a subcommand.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptnovax/internal/config"
	"promptnovax/internal/integrations"
	"promptnovax/internal/storage"
	"promptnovax/internal/testrun"
	"promptnovax/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:           "promptengine",
	Short:         "Multi-provider AI prompt testing and code generation engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app bundles the wired engine for command handlers.
type app struct {
	cfg          *config.Config
	logger       *utils.Logger
	kv           storage.KeyValue
	store        *integrations.Store
	checker      integrations.KeyChecker
	orchestrator *testrun.Orchestrator
}

// newApp loads configuration and wires the engine. The caller owns closing.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := utils.NewLogger("promptengine", utils.ParseLogLevel(cfg.LogLevel))

	kv, err := openKV(cfg)
	if err != nil {
		return nil, err
	}

	var opts []integrations.Option
	if cfg.Storage.EncryptionKey != "" {
		enc, err := storage.NewEncryptionFromBase64(cfg.Storage.EncryptionKey)
		if err != nil {
			kv.Close()
			return nil, fmt.Errorf("invalid encryption key: %w", err)
		}
		opts = append(opts, integrations.WithEncryption(enc))
	}

	store := integrations.NewStore(kv, logger, opts...)
	caller := testrun.NewSimulatedCaller(cfg.Engine.CallDelay)

	return &app{
		cfg:          cfg,
		logger:       logger,
		kv:           kv,
		store:        store,
		checker:      &integrations.SimulatedKeyChecker{Delay: cfg.Engine.KeyCheckDelay},
		orchestrator: testrun.NewOrchestrator(caller, store, logger),
	}, nil
}

func (a *app) close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Warn("failed to close storage", "error", err)
	}
}

func openKV(cfg *config.Config) (storage.KeyValue, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return storage.NewMemoryKV(), nil
	case config.BackendFile:
		return storage.NewFileKV(cfg.Storage.FilePath)
	case config.BackendRedis:
		return storage.NewRedisKV(storage.RedisConfig{
			Address:   cfg.Redis.Address,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			Namespace: cfg.Redis.Namespace,
		})
	case config.BackendPostgres:
		return storage.NewPostgresKV(cfg.Database.URL)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

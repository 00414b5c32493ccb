package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/replkit/internal/config"
	"github.com/sandevgo/replkit/internal/service/builtin"
	"github.com/sandevgo/replkit/internal/service/repl"
	"github.com/sandevgo/replkit/internal/transport/cli"
	"github.com/sandevgo/replkit/pkg/log"
	"github.com/sandevgo/replkit/pkg/srv"
	"github.com/spf13/cobra"
)

func NewServices(ctx context.Context, cmd *cobra.Command) []srv.Service {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration, flags win over env
	appCfg := config.NewAppConfig(ctx)
	applyFlags(cmd, appCfg)

	// 2. Interpreter with built-in commands
	interp := newInterpreter(ctx, appCfg)

	// 3. Transport
	session, err := cli.NewStdSession(appCfg, interp)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize terminal")
	}

	if appCfg.Banner {
		session.SetGreeting("Type 'help' for a list of commands.\n")
	}

	return []srv.Service{session}
}

func newInterpreter(ctx context.Context, cfg *config.AppConfig) *repl.Interpreter {
	interp := repl.New(
		repl.WithPrompt(cfg.GetPrompt()),
		repl.WithLogger(*log.FromCtx(ctx)),
	)
	if err := builtin.Register(interp); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to register built-in commands")
	}
	return interp
}

func applyFlags(cmd *cobra.Command, cfg *config.AppConfig) {
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = prompt
	}
	if cmd.Flags().Changed("plain") {
		cfg.Plain = plain
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

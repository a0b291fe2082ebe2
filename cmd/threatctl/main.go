// Command threatctl administers the world threat game mode.
//
// Usage:
//
//	threatctl migrate                 # apply schema migrations
//	threatctl init-boss               # create the boss row with baseline caps
//	threatctl status                  # print the current boss state
//	threatctl seed <player_id>        # give a player a demo collection
//	threatctl simulate <players>      # run concurrent actions against the service
//
// Config is read from config/worldthreat.yaml, overridable with the
// WORLDTHREAT_CONFIG environment variable.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/wanderergame/worldthreat/internal/config"
	"github.com/wanderergame/worldthreat/internal/data"
	"github.com/wanderergame/worldthreat/internal/db"
)

const defaultConfigPath = "config/worldthreat.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfgPath := defaultConfigPath
	if p := os.Getenv("WORLDTHREAT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := data.LoadCharacters(); err != nil {
		return fmt.Errorf("loading character catalog: %w", err)
	}

	switch cmd := args[0]; cmd {
	case "migrate":
		return runMigrate(ctx, cfg)
	case "init-boss":
		return runInitBoss(ctx, cfg)
	case "status":
		return runStatus(ctx, cfg)
	case "seed":
		if len(args) < 2 {
			return fmt.Errorf("usage: threatctl seed <player_id>")
		}
		return runSeed(ctx, cfg, args[1])
	case "simulate":
		players := 4
		if len(args) >= 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid player count %q", args[1])
			}
			players = n
		}
		return runSimulate(ctx, cfg, players)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runMigrate(ctx context.Context, cfg config.Config) error {
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: threatctl <command>

commands:
  migrate              apply schema migrations
  init-boss            create the boss row with baseline caps
  status               print the current boss state
  seed <player_id>     give a player a demo collection and balances
  simulate [players]   run concurrent research/fight actions (default 4)`)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/coffee-maker/internal/coffeemaker"
	"github.com/rogerio-castellano/coffee-maker/internal/config"
	"github.com/rogerio-castellano/coffee-maker/internal/console"
	"github.com/rogerio-castellano/coffee-maker/internal/logging"
	"github.com/rogerio-castellano/coffee-maker/internal/seed"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const name = "coffeemaker"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Simulated coffee vending machine",
		Commands: []*cli.Command{
			menuCmd(),
			versionCmd(),
		},
	}
}

func menuCmd() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "Run the interactive coffee maker menu on stdin/stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "recipes",
				Aliases: []string{"r"},
				Usage:   "YAML file with recipes to load before the menu starts",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Optional config file (YAML)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			// The menu owns stdout, so the logger stays quiet unless asked.
			logCfg := cfg.Log
			if !cmd.IsSet("config") && os.Getenv("COFFEE_LOG_LEVEL") == "" {
				logCfg.Level = "error"
			}
			logger, err := logging.New(logCfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			machine := coffeemaker.New(coffeemaker.WithLogger(logger))

			recipesFile := cmd.String("recipes")
			if recipesFile == "" {
				recipesFile = cfg.RecipesFile
			}
			if recipesFile != "" {
				entries, err := seed.LoadFile(recipesFile)
				if err != nil {
					return fmt.Errorf("failed to load recipes from %q: %w", recipesFile, err)
				}
				seed.Apply(machine, entries, logger.With(zap.String("file", recipesFile)))
			}

			return console.New(machine, os.Stdin, os.Stdout, logger).Run(ctx)
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s (%s)\n", name, version, commit)
			return err
		},
	}
}

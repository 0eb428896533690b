package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/gosketch/internal/app"
	"github.com/philipparndt/gosketch/internal/bootstrap"
	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/script"
	"github.com/philipparndt/gosketch/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	keymapPath string
	logLevel   string
	watch      bool
)

var rootCmd = &cobra.Command{
	Use:   "gosketch-raylib [script]",
	Short: "GPU accelerated 2D sketch editor",
	Long: `gosketch-raylib opens the sketch editor in a raylib window.
An optional input script is replayed before the window opens, so a recorded
session can be continued interactively.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetFullVersion(),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVarP(&keymapPath, "keymap", "k", "", "keymap file (overrides the config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the keymap file when it changes")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if keymapPath != "" {
		cfg.Keymap = keymapPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if watch {
		cfg.WatchKeymap = true
	}

	env, err := bootstrap.New(cfg, cfg.MetricsAddr != "")
	if err != nil {
		return err
	}

	if len(args) == 1 {
		sc, err := script.Load(args[0])
		if err != nil {
			return err
		}
		res, err := sc.Run(env.Session)
		if err != nil {
			return err
		}
		for _, e := range res.Errors {
			env.Logger.Warn("replayed event rejected", "error", e)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.New(env).Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

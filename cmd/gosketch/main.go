package main

import (
	"os"

	"github.com/philipparndt/gosketch/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	keymapPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gosketch",
	Short: "A headless driver for the gosketch 2D sketch editor",
	Long: `gosketch replays recorded input against the sketch editor and inspects the result.
Scripts drive the same mode stack, key bindings and entity store as the graphical
frontends, so sketches can be built, measured and queried from the command line.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&keymapPath, "keymap", "k", "", "keymap file (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fail("Error", err)
		os.Exit(1)
	}
}

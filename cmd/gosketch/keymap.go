package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/internal/keymap"
	"github.com/spf13/cobra"
)

var keymapCmd = &cobra.Command{
	Use:   "keymap",
	Short: "Inspect key binding files",
}

var keymapCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report every error in a keymap file",
	Args:  cobra.ExactArgs(1),
	Run:   runKeymapCheck,
}

var keymapDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in key bindings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(keymap.DefaultText())
	},
}

func init() {
	keymapCmd.AddCommand(keymapCheckCmd, keymapDefaultCmd)
	rootCmd.AddCommand(keymapCmd)
}

func runKeymapCheck(cmd *cobra.Command, args []string) {
	km, err := keymap.Load(args[0])
	if km == nil {
		exitOnError("Error", err)
	}
	if err != nil {
		fail("Configuration parsing errors", err)
		os.Exit(1)
	}

	keys, mouse := km.Len()
	fmt.Printf("%s: %d key binding(s), %d mouse binding(s)\n", args[0], keys, mouse)
	fmt.Printf("  snap_radius: %g\n", km.Settings.SnapRadius)
	fmt.Printf("  pick_radius: %g\n", km.Settings.PickRadius)
	fmt.Printf("  zoom_step: %g\n", km.Settings.ZoomStep)
}

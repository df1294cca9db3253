package xorkit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xorkit/xorkit/internal/registry"
)

var (
	flagNoColor       bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// commands is the one registry every subcommand dispatches through. It is
// built once at startup; registry construction only fails on programmer
// error (duplicate or nameless commands).
var commands = mustRegistry()

func mustRegistry() *registry.Registry {
	r := registry.New("xorkit", version)
	if _, err := registry.RegisterXOR(r); err != nil {
		panic(err)
	}
	return r
}

// rootCmd is the base Cobra command for the xorkit CLI.
var rootCmd = &cobra.Command{
	Use:           "xorkit",
	Short:         "Repeating-key XOR over binary data",
	Long:          "xorkit combines a byte buffer with a cyclically repeated key, byte for byte. Running the same command twice with the same key restores the original bytes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

// Execute runs the xorkit CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags, matching vovakirdan-surge's
// own version.Version convention.
var version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "clearvm",
	Short: "ClearVM bytecode interpreter",
	Long:  `ClearVM runs and disassembles compiled ClearVM bytecode modules (.clr.b).`,
}

func main() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

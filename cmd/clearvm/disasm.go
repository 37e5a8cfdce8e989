package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clearvm/clearvm/internal/config"
	"github.com/clearvm/clearvm/internal/vm"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <module>",
	Short: "Disassemble a compiled ClearVM module",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisasm,
}

func runDisasm(cmd *cobra.Command, args []string) error {
	launcher, err := config.LoadLauncher()
	if err != nil {
		return fmt.Errorf("loading launcher config: %w", err)
	}
	colorize := resolveColor(cmd, launcher.Color)

	path := args[0] + config.ModuleFileExt
	data, err := os.ReadFile(path)
	if err != nil {
		printDiagnostic(colorize, config.DiagnosticPrefix, err.Error())
		return err
	}

	printBanner(colorize, config.DisassemblingBanner)
	fmt.Println("```")
	listing, disErr := vm.DisassembleModule(data)
	fmt.Print(listing)
	fmt.Println("```")

	if disErr != nil {
		printDiagnostic(colorize, config.DiagnosticPrefix, disErr.Error())
		return disErr
	}
	return nil
}

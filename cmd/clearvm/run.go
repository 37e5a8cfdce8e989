package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/clearvm/clearvm/internal/config"
	"github.com/clearvm/clearvm/internal/memreport"
	"github.com/clearvm/clearvm/internal/vm"
)

var runCmd = &cobra.Command{
	Use:   "run <module>",
	Short: "Execute a compiled ClearVM module",
	Args:  cobra.ExactArgs(1),
	RunE:  runExecute,
}

func init() {
	runCmd.Flags().String("mem-report", "", "write a DEBUG_MEM allocation report (yaml) to this path")
}

func runExecute(cmd *cobra.Command, args []string) error {
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

	runID := uuid.NewString()[:8]
	if vm.DebugTrace {
		printBanner(colorize, fmt.Sprintf("%s (run %s)", config.RunningBanner, runID))
	} else {
		printBanner(colorize, config.RunningBanner)
	}
	fmt.Println("```")

	machine := vm.New(os.Stdout)

	memReportPath, _ := cmd.Flags().GetString("mem-report")
	if memReportPath == "" {
		memReportPath = launcher.MemReport
	}
	var collector *memreport.Collector
	if memReportPath != "" || vm.DebugMem {
		collector = memreport.NewCollector(runID)
		machine.SetAllocObserver(collector)
	}

	runErr := machine.Execute(data)
	machine.Teardown()

	fmt.Println("```")

	if collector != nil && memReportPath != "" {
		if err := collector.WriteFile(memReportPath); err != nil {
			printDiagnostic(colorize, config.DiagnosticPrefix, err.Error())
		}
	}

	if runErr != nil {
		printDiagnostic(colorize, config.DiagnosticPrefix, runErr.Error())
		return runErr
	}
	return nil
}

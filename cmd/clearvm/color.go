package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// resolveColor decides whether to colorize this invocation's output,
// following the same auto|on|off convention surge's --color flag uses:
// "auto" colorizes only when stdout is an attached terminal.
func resolveColor(cmd *cobra.Command, configured string) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil || mode == "" {
		mode = configured
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

var (
	diagColor   = color.New(color.FgRed)
	bannerColor = color.New(color.FgCyan, color.Bold)
)

// printDiagnostic writes err to stdout prefixed with "|| ", colorized red
// when enabled, matching ClearVM's original C diagnostic convention.
func printDiagnostic(colorize bool, prefix, msg string) {
	line := prefix + msg
	if colorize {
		diagColor.Println(line)
		return
	}
	os.Stdout.WriteString(line + "\n")
}

func printBanner(colorize bool, title string) {
	if colorize {
		bannerColor.Println(title)
		return
	}
	os.Stdout.WriteString(title + "\n")
}

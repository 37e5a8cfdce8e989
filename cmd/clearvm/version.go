package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the clearvm version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint(version))
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"termfx/pkg/demo"
	"termfx/pkg/ui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Long: `List every demo in its execution order, with a one-line
description of the output technique it shows.`,
	Run: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	ui.PrintHighlight("Available demos (in execution order):")
	fmt.Println()
	for i, d := range demo.Registry() {
		fmt.Printf("  %2d. %-12s %s\n", i+1, ui.Cyan(d.Name), ui.Dim(d.About))
	}
	fmt.Println()
	fmt.Println("Run a subset with: termfx run <name> [name...]")
}

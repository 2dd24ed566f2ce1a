// Package main is the entry point for the An Untitled Story world CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/aus-world/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "aus-world",
	Short: "An Untitled Story multiworld generator",
	Long: `aus-world declares the An Untitled Story options, items, locations and logic,
generates player slots and serves their slot data over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// Package main is the entry point for the hotel booking server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hotel-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "hotel-api",
	Short: "Hotel room booking server",
	Long:  `Hotel API books groups of rooms so that the walk between them is as short as possible. It serves gRPC and an HTTP JSON API.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

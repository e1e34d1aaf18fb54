// Package main is the entry point for the projectboard CLI.
//
// ProjectBoard can be used either as a library (SDK) or as a standalone
// binary driving an interactive terminal session. This CLI provides the
// standalone approach.
//
// Usage:
//
//	projectboard run                    # Start with an empty board
//	projectboard run -c board.yaml      # Start with seeded projects
//	projectboard validate -c board.yaml # Validate configuration
//	projectboard version                # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "projectboard",
	Short: "An interactive project board for the terminal",
	Long: `ProjectBoard is an interactive, in-memory project board.

Projects are created through a validated form, live in "active" and
"finished" lists, and every change re-renders both lists immediately.
Nothing is persisted: the board lives for the session.

Quick start:
  1. Run: projectboard run
  2. Type: add Build shed | Wooden shed construction | 3
  3. Type: finish <id-prefix> to move a project

Example config (optional, seeds the board):
  title: Team Sprint Board
  seeds:
    - title: Build shed
      description: Wooden shed construction
      people: 3`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this projectboard binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("projectboard %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}

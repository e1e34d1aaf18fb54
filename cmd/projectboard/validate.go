package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EmirDelicR/projectboard/config"
)

// validateCmd validates a config file without starting a session.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a projectboard configuration file without starting a session.

This command parses the YAML and validates every seed project against the
form rules (title required, description at least 5 characters, people
between 1 and 5).

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  projectboard validate -c board.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	active := 0
	finished := 0
	for _, s := range cfg.Seeds {
		if s.Status == "finished" {
			finished++
		} else {
			active++
		}
	}

	title := cfg.Title
	if title == "" {
		title = "(default)"
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Title: %s\n", title)
	fmt.Printf("  Seeds: %d active + %d finished = %d total\n",
		active, finished, active+finished)

	return nil
}

// Package main provides the entry point for the coopready resume analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coopready",
	Short: "Resume analysis for co-op and early-career candidates",
	Long:  "coopready scores a parsed resume against a job description, checks its structure for the candidate's archetype, and merges accepted text suggestions.",
}

// newLogger builds the CLI logger. Verbose mode enables debug-level console
// output; otherwise only warnings and errors reach stderr.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

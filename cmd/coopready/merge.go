package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lawrence-dass/coop-ready-sub002/internal/merge"
	"github.com/lawrence-dass/coop-ready-sub002/internal/observability"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Apply accepted suggestions to a resume",
	Long:  "Applies accepted suggestions to the resume in chronological order and writes the merged resume with diff metadata. Pending and rejected suggestions are left untouched.",
	RunE:  runMerge,
}

var (
	mergeResume      string
	mergeSuggestions string
	mergeOutputFile  string
	mergeVerbose     bool
)

func init() {
	mergeCmd.Flags().StringVarP(&mergeResume, "resume", "r", "", "Path to parsed resume JSON file (required)")
	mergeCmd.Flags().StringVarP(&mergeSuggestions, "suggestions", "s", "", "Path to suggestions JSON file (required)")
	mergeCmd.Flags().StringVarP(&mergeOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	mergeCmd.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = mergeCmd.MarkFlagRequired("resume")
	_ = mergeCmd.MarkFlagRequired("suggestions")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(mergeResume)
	if err != nil {
		return err
	}
	suggestions, err := loadSuggestions(mergeSuggestions)
	if err != nil {
		return err
	}

	logger := newLogger(mergeVerbose)
	engine := merge.NewEngine(merge.WithLogger(logger))
	result, err := engine.Apply(resume, suggestions)
	if err != nil {
		return err
	}

	if mergeVerbose {
		observability.NewPrinter(os.Stdout).PrintMergeSummary(result)
	}

	return writeOutput(mergeOutputFile, result)
}

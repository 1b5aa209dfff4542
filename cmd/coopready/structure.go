package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lawrence-dass/coop-ready-sub002/internal/observability"
	"github.com/lawrence-dass/coop-ready-sub002/internal/structural"
	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check a resume's structure for the candidate's archetype",
	Long:  "Evaluates archetype-conditioned structural rules over the resume's sections and headings. Runs fully offline; no API key required.",
	RunE:  runStructure,
}

var (
	structureResume       string
	structureArchetype    string
	structureSectionOrder []string
	structureOutputFile   string
	structureVerbose      bool
)

func init() {
	structureCmd.Flags().StringVarP(&structureResume, "resume", "r", "", "Path to parsed resume JSON file (required)")
	structureCmd.Flags().StringVarP(&structureArchetype, "archetype", "a", "", "Candidate archetype: coop, fulltime, career_changer (required)")
	structureCmd.Flags().StringSliceVar(&structureSectionOrder, "section-order", nil, "Resume section order, e.g. skills,education,projects,experience")
	structureCmd.Flags().StringVarP(&structureOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	structureCmd.Flags().BoolVarP(&structureVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = structureCmd.MarkFlagRequired("resume")
	_ = structureCmd.MarkFlagRequired("archetype")

	rootCmd.AddCommand(structureCmd)
}

func runStructure(_ *cobra.Command, _ []string) error {
	archetype := types.Archetype(structureArchetype)
	if !archetype.Valid() {
		return fmt.Errorf("unknown archetype %q: must be one of coop, fulltime, career_changer", structureArchetype)
	}

	resume, err := loadResume(structureResume)
	if err != nil {
		return err
	}

	logger := newLogger(structureVerbose)
	engine := structural.NewEngine(structural.WithLogger(logger))
	suggestions := engine.Evaluate(structural.Input{
		Archetype:    archetype,
		Resume:       resume,
		SectionOrder: structureSectionOrder,
		RawText:      resume.RawText,
	})

	if structureVerbose {
		observability.NewPrinter(os.Stdout).PrintStructuralSuggestions(suggestions)
	}

	return writeOutput(structureOutputFile, suggestions)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/autofill-engine/internal/config"
	"github.com/jonathan/autofill-engine/internal/matching"
	"github.com/jonathan/autofill-engine/internal/observability"
	"github.com/jonathan/autofill-engine/internal/profile"
	"github.com/jonathan/autofill-engine/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a job posting against a candidate profile",
	Long:  "Score a job posting JSON file against a candidate profile and print the multi-factor match analysis.",
	RunE:  runMatch,
}

var (
	matchProfileFile string
	matchJobFile     string
	matchOutputFile  string
	matchConfigFile  string
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to user profile JSON file")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting JSON file")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to write the match result JSON (default: stdout)")
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Path to config JSON file")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted analysis summary")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchConfigFile != "" {
		cfg, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if matchProfileFile == "" {
			matchProfileFile = cfg.Profile
		}
		if matchJobFile == "" {
			matchJobFile = cfg.Job
		}
		matchVerbose = matchVerbose || cfg.Verbose
	}

	if matchProfileFile == "" {
		return fmt.Errorf("profile file is required (use --profile)")
	}
	if matchJobFile == "" {
		return fmt.Errorf("job file is required (use --job)")
	}

	userProfile, err := profile.Load(matchProfileFile)
	if err != nil {
		return err
	}

	job, err := loadJob(matchJobFile)
	if err != nil {
		return err
	}

	result := matching.Analyze(*job, userProfile)

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	}

	return writeJSON(matchOutputFile, result)
}

func loadJob(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

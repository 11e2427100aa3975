package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/browser"
	"github.com/jonathan/autofill-engine/internal/config"
	"github.com/jonathan/autofill-engine/internal/navigator"
	"github.com/jonathan/autofill-engine/internal/observability"
	"github.com/jonathan/autofill-engine/internal/profile"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Fill a job application form from a candidate profile",
	Long:  "Open a job application URL, detect its ATS platform, and fill every page of the form from the candidate profile. The application is submitted only when --submit is given.",
	RunE:  runApply,
}

var (
	applyProfileFile string
	applyURL         string
	applyConfigFile  string
	applyOutputFile  string
	applyMaxPages    int
	applyFieldDelay  int
	applyVerify      bool
	applySubmit      bool
	applyHeadful     bool
	applyVerbose     bool
)

func init() {
	applyCmd.Flags().StringVarP(&applyProfileFile, "profile", "p", "", "Path to user profile JSON file")
	applyCmd.Flags().StringVarP(&applyURL, "url", "u", "", "Job application URL")
	applyCmd.Flags().StringVarP(&applyConfigFile, "config", "c", "", "Path to config JSON file")
	applyCmd.Flags().StringVarP(&applyOutputFile, "out", "o", "", "Path to write the session result JSON (default: stdout)")
	applyCmd.Flags().IntVar(&applyMaxPages, "max-pages", 0, "Maximum form pages to traverse (default 10)")
	applyCmd.Flags().IntVar(&applyFieldDelay, "field-delay", 0, "Pause between field writes, milliseconds")
	applyCmd.Flags().BoolVar(&applyVerify, "verify", false, "Read back every written value and fail on mismatch")
	applyCmd.Flags().BoolVar(&applySubmit, "submit", false, "Submit the application after filling")
	applyCmd.Flags().BoolVar(&applyHeadful, "headful", false, "Show the browser window")
	applyCmd.Flags().BoolVarP(&applyVerbose, "verbose", "v", false, "Print progress details")

	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	if applyConfigFile != "" {
		cfg, err := config.LoadConfig(applyConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if applyProfileFile == "" {
			applyProfileFile = cfg.Profile
		}
		if applyURL == "" {
			applyURL = cfg.JobURL
		}
		if applyMaxPages == 0 {
			applyMaxPages = cfg.MaxPages
		}
		if applyFieldDelay == 0 {
			applyFieldDelay = cfg.FieldDelayMs
		}
		applyVerify = applyVerify || cfg.Verify
		applyVerbose = applyVerbose || cfg.Verbose
	}

	if applyProfileFile == "" {
		return fmt.Errorf("profile file is required (use --profile)")
	}
	if applyURL == "" {
		return fmt.Errorf("url is required (use --url)")
	}

	userProfile, err := profile.Load(applyProfileFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := browser.NewSession(ctx, browser.Options{
		Headless: !applyHeadful,
		Timeout:  10 * time.Minute,
		Verbose:  applyVerbose,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Navigate(applyURL); err != nil {
		return err
	}
	html, err := session.HTML()
	if err != nil {
		return err
	}

	detection := ats.Detect(applyURL, html)
	printer := observability.NewPrinter(os.Stdout)
	if applyVerbose {
		printer.PrintDetection(detection)
	}

	nav := navigator.New(session.Page(), detection.Adapter, userProfile, navigator.Options{
		MaxPages:   applyMaxPages,
		FieldDelay: time.Duration(applyFieldDelay) * time.Millisecond,
		Verify:     applyVerify,
		Verbose:    applyVerbose,
	})

	result, err := nav.Run(ctx)
	if err != nil {
		// Partial results still get reported before the error propagates.
		printer.PrintFillSession(result)
		return err
	}

	if applySubmit {
		if err := nav.Submit(ctx); err != nil {
			printer.PrintFillSession(result)
			return err
		}
		result.Submitted = true
	}

	printer.PrintFillSession(result)
	return writeJSON(applyOutputFile, result)
}

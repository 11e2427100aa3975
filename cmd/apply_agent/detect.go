package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/browser"
	"github.com/jonathan/autofill-engine/internal/observability"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the ATS platform hosting a job application page",
	Long:  "Load a job application URL in a headless browser and report which ATS platform hosts it, with a detection confidence.",
	RunE:  runDetect,
}

var (
	detectURL      string
	detectHTMLFile string
	detectHeadful  bool
	detectVerbose  bool
)

func init() {
	detectCmd.Flags().StringVarP(&detectURL, "url", "u", "", "Job application URL")
	detectCmd.Flags().StringVar(&detectHTMLFile, "html", "", "Detect from a saved HTML file instead of a live page (requires --url for the page address)")
	detectCmd.Flags().BoolVar(&detectHeadful, "headful", false, "Show the browser window")
	detectCmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Print browser progress")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(_ *cobra.Command, _ []string) error {
	if detectURL == "" {
		return fmt.Errorf("url is required (use --url)")
	}

	var html string
	if detectHTMLFile != "" {
		data, err := os.ReadFile(detectHTMLFile)
		if err != nil {
			return fmt.Errorf("failed to read HTML file %s: %w", detectHTMLFile, err)
		}
		html = string(data)
	} else {
		ctx := context.Background()
		session, err := browser.NewSession(ctx, browser.Options{
			Headless: !detectHeadful,
			Timeout:  60 * time.Second,
			Verbose:  detectVerbose,
		})
		if err != nil {
			return err
		}
		defer session.Close()

		if err := session.Navigate(detectURL); err != nil {
			return err
		}
		html, err = session.HTML()
		if err != nil {
			return err
		}
	}

	detection := ats.Detect(detectURL, html)
	observability.NewPrinter(os.Stdout).PrintDetection(detection)
	return nil
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match analysis.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %d/100\n", result.MatchScore))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", result.Confidence))
	sb.WriteString("\n")

	sb.WriteString("Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  Skills:     %d\n", result.Breakdown.Skills.Score))
	sb.WriteString(fmt.Sprintf("  Title:      %d\n", result.Breakdown.Title.Score))
	sb.WriteString(fmt.Sprintf("  Experience: %d\n", result.Breakdown.Experience.Score))
	sb.WriteString(fmt.Sprintf("  Education:  %d\n", result.Breakdown.Education.Score))
	sb.WriteString(fmt.Sprintf("  Location:   %d\n", result.Breakdown.Location.Score))

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nMissing Keywords:\n")
		count := min(len(result.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			msg := result.Recommendations[i].Message
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", msg))
		}
	}

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetection outputs the detected ATS platform and its confidence.
func (p *Printer) PrintDetection(d ats.Detection) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Platform:   %s\n", d.ATS))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", d.Confidence))
	if d.Adapter != nil {
		sb.WriteString(fmt.Sprintf("Method:     %s\n", d.Adapter.Config.Method))
		sb.WriteString(fmt.Sprintf("Multi-page: %v\n", d.Adapter.Config.MultiPage))
		sb.WriteString(fmt.Sprintf("Fields:     %d", len(d.Adapter.Selectors)))
	}
	p.printBox("ATS DETECTION", sb.String())
}

// PrintFillSession outputs the aggregated result of an autofill session.
func (p *Printer) PrintFillSession(result *types.FillSessionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session:  %s\n", result.SessionID))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", result.Pages))
	sb.WriteString(fmt.Sprintf("Filled:   %d/%d fields\n", result.FilledFields, result.TotalFields))

	if len(result.FailedFields) > 0 {
		sb.WriteString("\nFailed:\n")
		count := min(len(result.FailedFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.FailedFields[i]))
		}
		if len(result.FailedFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.FailedFields)-maxItemsToShow))
		}
	}

	if len(result.SkippedFields) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped:  %s\n", strings.Join(result.SkippedFields, ", ")))
	}

	if result.CeilingReached {
		sb.WriteString("\n⚠ Stopped at page ceiling; form may have more pages\n")
	}
	if result.Submitted {
		sb.WriteString("\n✅ Application submitted\n")
	} else {
		sb.WriteString("\nNot submitted (submission is always explicit)\n")
	}

	p.printBox("FILL SESSION", strings.TrimSuffix(sb.String(), "\n"))
}

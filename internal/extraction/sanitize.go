package extraction

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jonathan/autofill-engine/internal/types"
)

// strictPolicy strips all markup; scraped descriptions frequently arrive as
// raw HTML fragments.
var strictPolicy = bluemonday.StrictPolicy()

var spaceRun = regexp.MustCompile(`[ \t]+`)

// SanitizeJob returns a normalized copy of the posting: markup stripped,
// entities decoded, whitespace collapsed, every field trimmed and never nil.
// The description falls back to the requirements and qualifications aliases
// when empty. Called once per analysis.
func SanitizeJob(job types.JobPosting) types.JobPosting {
	description := job.Description
	if strings.TrimSpace(description) == "" {
		description = job.Requirements
	}
	if strings.TrimSpace(description) == "" {
		description = job.Qualifications
	}

	return types.JobPosting{
		Title:       CleanText(job.Title),
		Company:     CleanText(job.Company),
		Location:    CleanText(job.Location),
		Description: CleanText(description),
		Salary:      strings.TrimSpace(job.Salary),
		URL:         strings.TrimSpace(job.URL),
	}
}

// CleanText strips HTML, decodes entities, and collapses runs of spaces and
// blank lines while preserving line structure.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	if strings.ContainsRune(text, '<') {
		text = strictPolicy.Sanitize(text)
	}
	text = html.UnescapeString(text)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, spaceRun.ReplaceAllString(strings.TrimSpace(line), " "))
	}
	text = strings.Join(cleaned, "\n")

	// Reduce 3+ consecutive newlines to a blank line.
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}

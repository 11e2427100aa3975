package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// SalaryRange is a detected compensation band, normalized to full dollars.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

var salaryPatterns = []*regexp.Regexp{
	// $50,000 - $80,000
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})+)(?:\s*-\s*\$?(\d{1,3}(?:,\d{3})+))?`),
	// 50,000 - 80,000 USD
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+)\s*-\s*(\d{1,3}(?:,\d{3})+)\s*(?:usd|dollars?)`),
	// $50k - $80k
	regexp.MustCompile(`(?i)\$(\d{1,3})k(?:\s*-\s*\$?(\d{1,3})k)?`),
	// 50k - 80k per year
	regexp.MustCompile(`(?i)(\d{1,3})k\s*-\s*(\d{1,3})k\s*(?:per\s+year|annually)`),
}

// ExtractSalary finds the first salary range in the text, or nil when no
// pattern matches. Values under 1000 are treated as thousands.
func ExtractSalary(text string) *SalaryRange {
	for _, pattern := range salaryPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		min := parseAmount(m[1])
		max := min
		if len(m) > 2 && m[2] != "" {
			max = parseAmount(m[2])
		}
		return &SalaryRange{Min: min, Max: max, Currency: "USD"}
	}
	return nil
}

func parseAmount(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	if n < 1000 {
		n *= 1000
	}
	return n
}

// experienceLevels is ordered most-senior-first so the strongest signal wins
// when a posting mentions several.
var experienceLevels = []string{
	"principal", "staff", "architect", "director", "lead", "senior",
	"mid-level", "junior", "entry-level", "internship",
}

// ExtractExperienceLevel returns the first seniority keyword found in the
// text, or "" when none is present.
func ExtractExperienceLevel(text string) string {
	lower := strings.ToLower(text)
	for _, level := range experienceLevels {
		if containsTerm(lower, level) {
			return level
		}
	}
	return ""
}

package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Requirements holds the structured facts extracted from a job description.
type Requirements struct {
	// YearsRequired is 0 when no years-of-experience phrase is present.
	YearsRequired int
	// Education is the detected minimum degree keyword ("" when none).
	Education string
	// Skills is the subset of the fixed vocabulary found in the text.
	Skills []string
}

var (
	yearsPattern  = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:year|yr)s?\s*(?:of\s*)?(?:experience|exp)`)
	degreePattern = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|associate|b\.?s\.?|m\.?s\.?|m\.?b\.?a\.?)\b`)
)

// skillVocabulary is the fixed skill list tested against descriptions.
// Matching is exact word-boundary containment, no stemming.
var skillVocabulary = []string{
	"javascript", "python", "java", "c++", "c#", "ruby", "go", "rust", "typescript", "php", "swift", "kotlin",
	"react", "angular", "vue", "node", "express", "django", "flask", "spring", "rails", "laravel",
	"sql", "nosql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "git", "ci/cd",
	"rest", "graphql", "api", "microservices", "agile", "scrum", "jira",
	"machine learning", "ai", "data science", "tensorflow", "pytorch", "pandas", "numpy",
	"html", "css", "sass", "tailwind", "bootstrap", "webpack", "vite",
	"testing", "jest", "cypress", "selenium", "unit testing", "tdd", "bdd",
}

// ExtractRequirements extracts years of experience, education level, and the
// named-skill subset from a job description. Empty input yields zero values;
// it never fails.
func ExtractRequirements(description string) Requirements {
	desc := strings.ToLower(description)

	years := 0
	if m := yearsPattern.FindStringSubmatch(desc); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			years = n
		}
	}

	education := ""
	if m := degreePattern.FindStringSubmatch(desc); m != nil {
		education = strings.ToLower(m[1])
	}

	return Requirements{
		YearsRequired: years,
		Education:     education,
		Skills:        ExtractSkills(desc),
	}
}

// ExtractSkills returns the vocabulary terms present in the text, in
// vocabulary order, without duplicates.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range skillVocabulary {
		if containsTerm(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// containsTerm reports whether term occurs in text at word boundaries.
// Boundaries are checked manually because regexp \b misbehaves around the
// symbol characters in terms like "c++" and "c#".
func containsTerm(text, term string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isWordByte(text[idx-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

// Package matching combines skill, title, experience, education, and
// location sub-scores into a single 0-100 match score with explanations.
package matching

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/autofill-engine/internal/extraction"
	"github.com/jonathan/autofill-engine/internal/types"
)

// Category weights. They sum to 1.0; each sub-score is 0-100 so the weighted
// combination stays in range before rounding.
const (
	skillWeight      = 0.35
	titleWeight      = 0.25
	experienceWeight = 0.20
	educationWeight  = 0.10
	locationWeight   = 0.10
)

// MinConfidenceChars is the description length below which a result is
// flagged low-confidence: extraction quality degrades with little text.
// Tunable, not a contract.
const MinConfidenceChars = 150

const maxMissingKeywords = 10

// Analyze scores a job posting against a candidate profile. It is pure and
// idempotent: identical inputs produce identical results. Any internal panic
// is converted into a zero-score error result so the caller's flow is never
// aborted by a malformed posting.
func Analyze(job types.JobPosting, profile *types.UserProfile) (result *types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &types.MatchResult{
				Confidence: types.ConfidenceError,
				Err:        fmt.Sprintf("match analysis failed: %v", r),
			}
		}
	}()

	if profile == nil {
		profile = &types.UserProfile{}
	}

	sanitized := extraction.SanitizeJob(job)
	jobKeywords := extraction.Keywords(sanitized.Title + " " + sanitized.Description)
	requirements := extraction.ExtractRequirements(sanitized.Description)

	breakdown := types.Breakdown{
		Skills:     computeSkillScore(jobKeywords, requirements.Skills, profile),
		Title:      computeTitleScore(sanitized.Title, profile),
		Experience: computeExperienceScore(requirements.YearsRequired, profile),
		Education:  computeEducationScore(requirements.Education, profile),
		Location:   computeLocationScore(sanitized.Location, profile),
	}

	weighted := math.Round(
		float64(breakdown.Skills.Score)*skillWeight +
			float64(breakdown.Title.Score)*titleWeight +
			float64(breakdown.Experience.Score)*experienceWeight +
			float64(breakdown.Education.Score)*educationWeight +
			float64(breakdown.Location.Score)*locationWeight)

	score := int(weighted)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	confidence := types.ConfidenceLow
	if len(sanitized.Description) >= MinConfidenceChars {
		confidence = types.ConfidenceHigh
	}

	missing := findMissingKeywords(jobKeywords, profile.KeywordIndex)
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return &types.MatchResult{
		MatchScore:      score,
		Confidence:      confidence,
		ConfidenceLevel: len(sanitized.Description),
		Breakdown:       breakdown,
		Factors:         buildFactors(breakdown),
		MissingKeywords: missing,
		Recommendations: buildRecommendations(missing, profile),
		AnalyzedAt:      time.Now().UTC(),
	}
}

package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/autofill-engine/internal/types"
)

// buildFactors derives the human-readable positive/negative explanation list
// from the sub-score breakdown.
func buildFactors(b types.Breakdown) []types.Factor {
	var factors []types.Factor

	switch {
	case b.Skills.Score >= 70:
		factors = append(factors, types.Factor{
			Type:     "positive",
			Category: "skills",
			Description: fmt.Sprintf("Strong skill match (%d of %d required skills)",
				len(b.Skills.MatchedSkills), b.Skills.TotalRequired),
			Weight: skillWeight,
		})
	case b.Skills.Score < 50:
		factors = append(factors, types.Factor{
			Type:     "negative",
			Category: "skills",
			Description: fmt.Sprintf("Skills gap detected - %d skills missing",
				b.Skills.TotalRequired-len(b.Skills.MatchedSkills)),
			Weight: skillWeight,
		})
	}

	if b.Title.Score >= 70 {
		factors = append(factors, types.Factor{
			Type:        "positive",
			Category:    "title",
			Description: "Job title aligns with your experience",
			Weight:      titleWeight,
		})
	}

	if b.Experience.Difference < 0 {
		factors = append(factors, types.Factor{
			Type:     "negative",
			Category: "experience",
			Description: fmt.Sprintf("Requires %d more years of experience",
				-b.Experience.Difference),
			Weight: experienceWeight,
		})
	}

	if b.Location.Score >= 80 {
		factors = append(factors, types.Factor{
			Type:        "positive",
			Category:    "location",
			Description: "Location matches your preferences",
			Weight:      locationWeight,
		})
	}

	return factors
}

// buildRecommendations suggests profile improvements: the top missing
// keywords, and enriching the skills section when it is sparse.
func buildRecommendations(missingKeywords []string, profile *types.UserProfile) []types.Recommendation {
	var recs []types.Recommendation

	if len(missingKeywords) > 0 {
		top := missingKeywords
		if len(top) > 5 {
			top = top[:5]
		}
		recs = append(recs, types.Recommendation{
			Type:     "skill-gap",
			Priority: "high",
			Message:  "Consider learning: " + strings.Join(top, ", "),
			Action:   "Add these skills to your profile or resume",
		})
	}

	if len(profile.Skills) < 5 {
		recs = append(recs, types.Recommendation{
			Type:     "profile-improvement",
			Priority: "medium",
			Message:  "Add more skills to your profile",
			Action:   "Complete your skills section with at least 10 skills",
		})
	}

	return recs
}

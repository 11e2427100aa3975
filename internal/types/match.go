package types

import "time"

// Confidence labels for a MatchResult.
const (
	ConfidenceHigh  = "high"
	ConfidenceLow   = "low"
	ConfidenceError = "error"
)

// MatchResult is the immutable output of one job/profile analysis.
// It is recomputed fresh per posting and never cached by the engine.
type MatchResult struct {
	MatchScore int    `json:"match_score"` // 0-100
	Confidence string `json:"confidence"`  // high, low, or error
	// ConfidenceLevel is the raw description character count the confidence
	// label was derived from.
	ConfidenceLevel int       `json:"confidence_level"`
	Breakdown       Breakdown `json:"breakdown"`
	Factors         []Factor  `json:"factors,omitempty"`
	// MissingKeywords are extracted job keywords absent from the candidate's
	// keyword index, capped at ten.
	MissingKeywords []string         `json:"missing_keywords,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
	Err             string           `json:"error,omitempty"`
}

// Breakdown holds one sub-score record per scoring factor.
type Breakdown struct {
	Skills     SkillScore      `json:"skills"`
	Title      TitleScore      `json:"title"`
	Experience ExperienceScore `json:"experience"`
	Education  EducationScore  `json:"education"`
	Location   LocationScore   `json:"location"`
}

// SkillScore is the skill factor sub-score with its explanation fields.
type SkillScore struct {
	Score          int      `json:"score"`
	MatchedSkills  []string `json:"matched_skills,omitempty"`
	TotalRequired  int      `json:"total_required"`
	MatchRatio     float64  `json:"match_ratio"`
	KeywordMatches int      `json:"keyword_matches"`
}

// TitleScore is the title factor sub-score.
type TitleScore struct {
	Score      int      `json:"score"`
	Similarity float64  `json:"similarity"`
	Matches    []string `json:"matches,omitempty"`
}

// ExperienceScore is the years-of-experience factor sub-score.
type ExperienceScore struct {
	Score      int `json:"score"`
	UserYears  int `json:"user_years"`
	Required   int `json:"required"`
	Difference int `json:"difference"`
}

// EducationScore is the education factor sub-score.
type EducationScore struct {
	Score int  `json:"score"`
	Meets bool `json:"meets"`
	// Level is the detected requirement, or "none required".
	Level string `json:"level"`
}

// LocationScore is the location factor sub-score.
type LocationScore struct {
	Score    int  `json:"score"`
	IsRemote bool `json:"is_remote"`
	Matches  bool `json:"matches"`
}

// Factor is one human-readable positive or negative match explanation.
type Factor struct {
	Type        string  `json:"type"` // positive or negative
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

// Recommendation suggests a profile improvement derived from the analysis.
type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

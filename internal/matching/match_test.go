package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/autofill-engine/internal/types"
)

func strongProfile() *types.UserProfile {
	return &types.UserProfile{
		FirstName:         "Jane",
		ProfessionalTitle: "Senior Software Engineer",
		YearsExperience:   6,
		Skills:            []string{"Go", "Python", "Kubernetes", "PostgreSQL", "Docker", "AWS"},
		PreferredRoles:    []string{"Backend Engineer", "Software Engineer"},
		RemotePreference:  "remote",
		WorkExperience: []types.WorkExperience{
			{Title: "Senior Software Engineer", Company: "Acme Corp"},
			{Title: "Software Engineer", Company: "Initech"},
		},
		Education: []types.Education{
			{Degree: "B.S.", Institution: "State University", Field: "Computer Science"},
		},
		KeywordIndex: []string{
			"go", "python", "kubernetes", "postgresql", "docker", "aws",
			"backend", "engineer", "software", "microservices",
		},
	}
}

func backendJob() types.JobPosting {
	return types.JobPosting{
		Title:    "Senior Software Engineer",
		Company:  "Example Inc",
		Location: "Remote",
		Description: `We are looking for a Senior Software Engineer to build backend
services. 5+ years of experience required. Bachelor's degree in Computer
Science or equivalent. You will work with Go, Python, Kubernetes, Docker,
PostgreSQL and AWS to design and operate microservices at scale.`,
	}
}

func TestAnalyze_StrongMatch(t *testing.T) {
	result := Analyze(backendJob(), strongProfile())
	require.NotNil(t, result)

	assert.Empty(t, result.Err)
	assert.GreaterOrEqual(t, result.MatchScore, 70)
	assert.LessOrEqual(t, result.MatchScore, 100)
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)

	// Every sub-score present and in range
	for name, score := range map[string]int{
		"skills":     result.Breakdown.Skills.Score,
		"title":      result.Breakdown.Title.Score,
		"experience": result.Breakdown.Experience.Score,
		"education":  result.Breakdown.Education.Score,
		"location":   result.Breakdown.Location.Score,
	} {
		assert.GreaterOrEqual(t, score, 0, name)
		assert.LessOrEqual(t, score, 100, name)
	}
}

func TestAnalyze_SubScores(t *testing.T) {
	result := Analyze(backendJob(), strongProfile())

	// 6 years against a 5-year requirement
	assert.Equal(t, 100, result.Breakdown.Experience.Score)
	assert.Equal(t, 5, result.Breakdown.Experience.Required)

	// B.S. meets a bachelor requirement
	assert.Equal(t, 100, result.Breakdown.Education.Score)
	assert.True(t, result.Breakdown.Education.Meets)

	// Remote location is a direct hit
	assert.Equal(t, 100, result.Breakdown.Location.Score)
	assert.True(t, result.Breakdown.Location.IsRemote)

	// Identical titles
	assert.Equal(t, 1.0, result.Breakdown.Title.Similarity)
}

func TestAnalyze_WeakMatch(t *testing.T) {
	profile := &types.UserProfile{
		FirstName:         "Sam",
		ProfessionalTitle: "Graphic Designer",
		YearsExperience:   1,
		Skills:            []string{"Photoshop", "Illustrator"},
	}

	result := Analyze(backendJob(), profile)
	strong := Analyze(backendJob(), strongProfile())

	assert.Less(t, result.MatchScore, strong.MatchScore)
	assert.NotEmpty(t, result.MissingKeywords)
}

func TestAnalyze_Idempotent(t *testing.T) {
	job := backendJob()
	profile := strongProfile()

	first := Analyze(job, profile)
	second := Analyze(job, profile)

	// Identical except for the analysis timestamp
	second.AnalyzedAt = first.AnalyzedAt
	assert.Equal(t, first, second)
}

func TestAnalyze_ShortDescriptionLowConfidence(t *testing.T) {
	job := types.JobPosting{
		Title:       "Engineer",
		Description: "Go developer wanted.",
	}

	result := Analyze(job, strongProfile())
	assert.Equal(t, types.ConfidenceLow, result.Confidence)
	assert.Equal(t, len("Go developer wanted."), result.ConfidenceLevel)
}

func TestAnalyze_NilProfile(t *testing.T) {
	result := Analyze(backendJob(), nil)
	require.NotNil(t, result)

	assert.Empty(t, result.Err)
	assert.GreaterOrEqual(t, result.MatchScore, 0)
	assert.LessOrEqual(t, result.MatchScore, 100)
}

func TestAnalyze_EmptyJob(t *testing.T) {
	result := Analyze(types.JobPosting{}, strongProfile())
	require.NotNil(t, result)

	assert.Empty(t, result.Err)
	assert.Equal(t, types.ConfidenceLow, result.Confidence)
}

func TestAnalyze_MissingKeywordsCapped(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString(strings.Repeat(string(rune('a'+i%26)), 5+i%3))
		sb.WriteString("word ")
	}
	job := types.JobPosting{Title: "Engineer", Description: sb.String()}

	result := Analyze(job, &types.UserProfile{FirstName: "Sam"})
	assert.LessOrEqual(t, len(result.MissingKeywords), 10)
}

func TestAnalyze_NoYearsRequirement(t *testing.T) {
	job := types.JobPosting{
		Title: "Software Engineer",
		Description: "Join our backend team building services in Go and Python. " +
			strings.Repeat("You will design, build and operate production systems. ", 3),
	}
	junior := &types.UserProfile{FirstName: "Kim", YearsExperience: 1}

	result := Analyze(job, junior)

	assert.Equal(t, 0, result.Breakdown.Experience.Required)
	assert.Equal(t, 100, result.Breakdown.Experience.Score)
}

func TestAnalyze_AddingRequiredSkillNeverLowersSkillScore(t *testing.T) {
	profile := &types.UserProfile{
		FirstName: "Sam",
		Skills:    []string{"python"},
	}
	before := Analyze(backendJob(), profile).Breakdown.Skills.Score

	// "go" appears in the job's required-skill set
	profile.Skills = append(profile.Skills, "go")
	after := Analyze(backendJob(), profile).Breakdown.Skills.Score

	assert.GreaterOrEqual(t, after, before)
}

func TestAnalyze_DescriptionFallsBackToRequirements(t *testing.T) {
	job := types.JobPosting{
		Title:        "Backend Engineer",
		Requirements: "5+ years of experience with Go and Kubernetes. " + strings.Repeat("Build reliable services. ", 10),
	}

	result := Analyze(job, strongProfile())
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
	assert.Equal(t, 5, result.Breakdown.Experience.Required)
}

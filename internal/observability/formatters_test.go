package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		MatchScore: 82,
		Confidence: types.ConfidenceHigh,
		Breakdown: types.Breakdown{
			Skills:     types.SkillScore{Score: 90},
			Title:      types.TitleScore{Score: 80},
			Experience: types.ExperienceScore{Score: 100},
			Education:  types.EducationScore{Score: 100},
			Location:   types.LocationScore{Score: 50},
		},
		MissingKeywords: []string{"terraform", "kafka"},
		Recommendations: []types.Recommendation{
			{Message: "Consider learning: terraform, kafka"},
		},
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH ANALYSIS")
	assert.Contains(t, output, "82/100")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "terraform")
	assert.Contains(t, output, "Consider learning")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDetection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	d := ats.Detect("https://boards.greenhouse.io/acme/jobs/123", "<html></html>")
	p.PrintDetection(d)
	output := buf.String()

	assert.Contains(t, output, "ATS DETECTION")
	assert.Contains(t, output, "greenhouse")
	assert.Contains(t, output, "Multi-page")
}

func TestPrintFillSession(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.FillSessionResult{
		SessionID:     "f9d7a2c4",
		TotalFields:   6,
		FilledFields:  4,
		FailedFields:  []string{"resume"},
		SkippedFields: []string{"coverLetter"},
		Pages:         2,
	}

	p.PrintFillSession(result)
	output := buf.String()

	assert.Contains(t, output, "FILL SESSION")
	assert.Contains(t, output, "4/6 fields")
	assert.Contains(t, output, "resume")
	assert.Contains(t, output, "coverLetter")
	assert.Contains(t, output, "Not submitted")
}

func TestPrintFillSession_CeilingReached(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.FillSessionResult{
		SessionID:      "f9d7a2c4",
		Pages:          10,
		CeilingReached: true,
	}

	p.PrintFillSession(result)
	output := buf.String()

	assert.Contains(t, output, "page ceiling")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.FillSessionResult{
		SessionID: "a-very-long-session-identifier-that-should-be-truncated-to-fit-the-box",
		Pages:     1,
	}

	p.PrintFillSession(result)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/autofill-engine/internal/types"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}

func writeJobFixture(t *testing.T) string {
	t.Helper()
	job := types.JobPosting{
		Title:       "Senior Backend Engineer",
		Company:     "Acme Corp",
		Location:    "Remote",
		Description: "We are looking for a senior backend engineer with 5+ years of experience building services in Go. Experience with Kubernetes and PostgreSQL required. Bachelor's degree in Computer Science or related field preferred. You will design APIs, operate production systems, and mentor junior engineers on the platform team.",
	}
	data, err := json.Marshal(job)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func resetMatchFlags() {
	matchProfileFile = ""
	matchJobFile = ""
	matchOutputFile = ""
	matchConfigFile = ""
	matchVerbose = false
}

func TestLoadJob_Success(t *testing.T) {
	path := writeJobFixture(t)

	job, err := loadJob(path)

	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
}

func TestLoadJob_FileNotFound(t *testing.T) {
	_, err := loadJob(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job file")
}

func TestLoadJob_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := loadJob(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse job JSON")
}

func TestWriteJSON_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSON(path, map[string]int{"score": 87}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 87, decoded["score"])
}

func TestRunMatch_EndToEnd(t *testing.T) {
	resetMatchFlags()
	matchProfileFile = filepath.Join("..", "..", "testdata", "valid", "user_profile.json")
	matchJobFile = writeJobFixture(t)
	matchOutputFile = filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, runMatch(nil, nil))

	data, err := os.ReadFile(matchOutputFile)
	require.NoError(t, err)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.GreaterOrEqual(t, result.MatchScore, 0)
	assert.LessOrEqual(t, result.MatchScore, 100)
	assert.Contains(t, []string{types.ConfidenceHigh, types.ConfidenceLow}, result.Confidence)
}

func TestRunMatch_MissingProfileFlag(t *testing.T) {
	resetMatchFlags()
	matchJobFile = writeJobFixture(t)

	err := runMatch(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile file is required")
}

func TestRunMatch_MissingJobFlag(t *testing.T) {
	resetMatchFlags()
	matchProfileFile = filepath.Join("..", "..", "testdata", "valid", "user_profile.json")

	err := runMatch(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file is required")
}

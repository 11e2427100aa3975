package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidProfile(t *testing.T) {
	p, err := Load("../../testdata/valid/user_profile.json")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Jane", p.FirstName)
	assert.Equal(t, 6, p.YearsExperience)
	// No precomputed index in the fixture: Load derives one
	assert.NotEmpty(t, p.KeywordIndex)
	assert.Contains(t, p.KeywordIndex, "go")
}

func TestLoad_SchemaRejection(t *testing.T) {
	p, err := Load("../../testdata/invalid/missing_field.json")
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/profile.json")
	assert.Error(t, err)
}

func TestLoad_InvalidEmail(t *testing.T) {
	// Passes the schema (email is a plain string there) but fails the
	// struct-level validator
	tmp := filepath.Join(t.TempDir(), "profile.json")
	content := `{"first_name": "Jane", "email": "not-an-email"}`
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0644))

	_, err := Load(tmp)
	assert.Error(t, err)
}

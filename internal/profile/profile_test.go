package profile

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/types"
)

func sampleProfile() *types.UserProfile {
	return &types.UserProfile{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@example.com",
		Phone:             "+1-555-0100",
		Location:          types.Location{City: "Denver", State: "CO", ZipCode: "80202"},
		ProfessionalTitle: "Senior Software Engineer",
		YearsExperience:   6,
		Skills:            []string{"Go", "Kubernetes"},
		PreferredRoles:    []string{"Backend Engineer"},
		WorkExperience: []types.WorkExperience{
			{Title: "Senior Software Engineer", Company: "Acme Corp"},
			{Title: "Software Engineer", Company: "Initech"},
		},
		Education: []types.Education{
			{Degree: "B.S.", Institution: "State University", Field: "CS"},
		},
		Links: types.Links{
			LinkedIn: "https://linkedin.com/in/janedoe",
			GitHub:   "https://github.com/janedoe",
		},
	}
}

func TestResolve_DirectFields(t *testing.T) {
	p := sampleProfile()

	assert.Equal(t, "Jane", Resolve(p, ats.FieldFirstName))
	assert.Equal(t, "Doe", Resolve(p, ats.FieldLastName))
	assert.Equal(t, "Jane Doe", Resolve(p, ats.FieldFullName))
	assert.Equal(t, "jane@example.com", Resolve(p, ats.FieldEmail))
	assert.Equal(t, "Denver", Resolve(p, ats.FieldCity))
	assert.Equal(t, "CO", Resolve(p, ats.FieldState))
	assert.Equal(t, "80202", Resolve(p, ats.FieldZipCode))
	assert.Equal(t, "6", Resolve(p, ats.FieldYearsExperience))
}

func TestResolve_DerivedFields(t *testing.T) {
	p := sampleProfile()

	// Current company and school come from the history entries
	assert.Equal(t, "Acme Corp", Resolve(p, ats.FieldCurrentCompany))
	assert.Equal(t, "State University", Resolve(p, ats.FieldSchool))
	assert.Equal(t, "B.S.", Resolve(p, ats.FieldDegree))
}

func TestResolve_AccessorPriority(t *testing.T) {
	p := sampleProfile()

	// The stated title wins over the latest position title
	assert.Equal(t, "Senior Software Engineer", Resolve(p, ats.FieldCurrentTitle))

	p.ProfessionalTitle = ""
	assert.Equal(t, "Senior Software Engineer", Resolve(p, ats.FieldCurrentTitle))

	// Portfolio falls back to the GitHub link
	assert.Equal(t, "https://github.com/janedoe", Resolve(p, ats.FieldPortfolio))
}

func TestResolve_EmptySources(t *testing.T) {
	p := &types.UserProfile{FirstName: "Jane"}

	assert.Empty(t, Resolve(p, ats.FieldEmail))
	assert.Empty(t, Resolve(p, ats.FieldCurrentCompany))
	assert.Empty(t, Resolve(p, ats.FieldYearsExperience))
}

func TestResolve_ControlFieldsNeverResolve(t *testing.T) {
	p := sampleProfile()

	assert.Empty(t, Resolve(p, ats.FieldSubmitButton))
	assert.Empty(t, Resolve(p, ats.FieldNextButton))
}

func TestResolve_NilProfile(t *testing.T) {
	assert.Empty(t, Resolve(nil, ats.FieldFirstName))
}

func TestFields_SortedAndStable(t *testing.T) {
	fields := Fields()
	require.NotEmpty(t, fields)

	assert.True(t, sort.SliceIsSorted(fields, func(i, j int) bool {
		return fields[i] < fields[j]
	}))
	assert.Equal(t, fields, Fields())

	for _, f := range fields {
		assert.False(t, f.IsControl(), string(f))
	}
}

func TestBuildKeywordIndex(t *testing.T) {
	index := BuildKeywordIndex(sampleProfile())

	assert.Contains(t, index, "go")
	assert.Contains(t, index, "kubernetes")
	assert.Contains(t, index, "backend engineer")
	assert.Contains(t, index, "senior software engineer")
	// Work-history titles contribute tokenized terms
	assert.Contains(t, index, "software")
	assert.Contains(t, index, "engineer")

	assert.True(t, sort.StringsAreSorted(index))
}

func TestBuildKeywordIndex_Nil(t *testing.T) {
	assert.Nil(t, BuildKeywordIndex(nil))
}

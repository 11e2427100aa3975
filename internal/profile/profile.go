// Package profile maps a user profile onto the logical field names the
// adapters expose. Each field resolves through an ordered accessor list so
// richer sources win and derived values fill the gaps.
package profile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/autofill-engine/internal/ats"
	"github.com/jonathan/autofill-engine/internal/extraction"
	"github.com/jonathan/autofill-engine/internal/types"
)

// accessors maps each fillable field to its candidate sources, in priority
// order. Resolve takes the first source that yields a non-empty string.
var accessors = map[ats.Field][]func(*types.UserProfile) string{
	ats.FieldFirstName: {
		func(p *types.UserProfile) string { return p.FirstName },
	},
	ats.FieldLastName: {
		func(p *types.UserProfile) string { return p.LastName },
	},
	ats.FieldFullName: {
		func(p *types.UserProfile) string {
			return strings.TrimSpace(p.FirstName + " " + p.LastName)
		},
	},
	ats.FieldEmail: {
		func(p *types.UserProfile) string { return p.Email },
	},
	ats.FieldPhone: {
		func(p *types.UserProfile) string { return p.Phone },
	},
	ats.FieldCurrentCompany: {
		func(p *types.UserProfile) string {
			if len(p.WorkExperience) > 0 {
				return p.WorkExperience[0].Company
			}
			return ""
		},
	},
	ats.FieldCurrentTitle: {
		func(p *types.UserProfile) string { return p.ProfessionalTitle },
		func(p *types.UserProfile) string {
			if len(p.WorkExperience) > 0 {
				return p.WorkExperience[0].Title
			}
			return ""
		},
	},
	ats.FieldYearsExperience: {
		func(p *types.UserProfile) string {
			if p.YearsExperience > 0 {
				return strconv.Itoa(p.YearsExperience)
			}
			return ""
		},
	},
	ats.FieldLinkedIn: {
		func(p *types.UserProfile) string { return p.Links.LinkedIn },
	},
	ats.FieldGitHub: {
		func(p *types.UserProfile) string { return p.Links.GitHub },
	},
	ats.FieldPortfolio: {
		func(p *types.UserProfile) string { return p.Links.Portfolio },
		func(p *types.UserProfile) string { return p.Links.GitHub },
	},
	ats.FieldCity: {
		func(p *types.UserProfile) string { return p.Location.City },
	},
	ats.FieldState: {
		func(p *types.UserProfile) string { return p.Location.State },
	},
	ats.FieldZipCode: {
		func(p *types.UserProfile) string { return p.Location.ZipCode },
	},
	ats.FieldSchool: {
		func(p *types.UserProfile) string {
			if len(p.Education) > 0 {
				return p.Education[0].Institution
			}
			return ""
		},
	},
	ats.FieldDegree: {
		func(p *types.UserProfile) string {
			if len(p.Education) > 0 {
				return p.Education[0].Degree
			}
			return ""
		},
	},
}

// Resolve returns the profile value for a logical field, or "" when the
// profile has nothing to offer. Control fields never resolve.
func Resolve(p *types.UserProfile, field ats.Field) string {
	if p == nil || field.IsControl() {
		return ""
	}
	for _, fn := range accessors[field] {
		if v := strings.TrimSpace(fn(p)); v != "" {
			return v
		}
	}
	return ""
}

// Fields returns every resolvable field name in deterministic order.
func Fields() []ats.Field {
	out := make([]ats.Field, 0, len(accessors))
	for f := range accessors {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BuildKeywordIndex derives the profile's search index from its skills,
// titles, and experience history. Terms are lowercased and deduplicated,
// ordered alphabetically.
func BuildKeywordIndex(p *types.UserProfile) []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool)
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
	}
	for _, s := range p.Skills {
		add(s)
	}
	for _, r := range p.PreferredRoles {
		add(r)
	}
	add(p.ProfessionalTitle)
	for _, w := range p.WorkExperience {
		for _, tok := range extraction.Tokenize(w.Title) {
			add(tok)
		}
	}
	out := make([]string, 0, len(seen))
	for term := range seen {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

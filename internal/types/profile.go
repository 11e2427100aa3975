// Package types provides type definitions for structured data used throughout the autofill engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UserProfile represents structured candidate data supplied by the host
// application. The engine treats it as read-only input; it is never mutated.
type UserProfile struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`

	Location Location `json:"location"`

	ProfessionalTitle  string   `json:"professional_title"`
	YearsExperience    int      `json:"years_experience" validate:"gte=0"`
	Skills             []string `json:"skills"`
	PreferredRoles     []string `json:"preferred_roles"`
	PreferredLocations []string `json:"preferred_locations"`
	RemotePreference   string   `json:"remote_preference" validate:"omitempty,oneof=remote hybrid onsite"`

	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Links          Links            `json:"links"`

	// KeywordIndex is a flat list of normalized terms derived from the
	// profile, precomputed by the host for fast matching. When absent the
	// profile package can rebuild it from the structured fields.
	KeywordIndex []string `json:"keyword_index"`
}

// Location represents the candidate's home location.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// WorkExperience represents one entry of the candidate's work history.
type WorkExperience struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date"` // YYYY-MM
	EndDate   string `json:"end_date"`   // YYYY-MM or "present"
}

// Education represents one entry of the candidate's education history.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Field          string `json:"field"`
	GraduationYear int    `json:"graduation_year"`
}

// Links holds the candidate's public profile URLs.
type Links struct {
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	GitHub    string `json:"github" validate:"omitempty,url"`
	Portfolio string `json:"portfolio" validate:"omitempty,url"`
}

package types

// FillSessionResult aggregates the outcome of one autofill invocation across
// every page of the application flow. It is produced once per invocation and
// returned to the caller; the engine retains nothing beyond that.
type FillSessionResult struct {
	SessionID string `json:"session_id"`
	// TotalFields counts every field binding resolved on any traversed page.
	TotalFields  int `json:"total_fields"`
	FilledFields int `json:"filled_fields"`
	// FailedFields are logical field names that had a profile value but could
	// not be filled. SkippedFields had no profile value available.
	FailedFields  []string `json:"failed_fields,omitempty"`
	SkippedFields []string `json:"skipped_fields,omitempty"`
	Pages         int      `json:"pages"`
	Submitted     bool     `json:"submitted"`
	// CeilingReached is set when traversal stopped at the hard page limit
	// while a next affordance was still present.
	CeilingReached bool `json:"ceiling_reached,omitempty"`
}

// Package schemas carries the JSON Schema documents bundled with the binary.
package schemas

import _ "embed"

// UserProfile is the draft-07 schema every candidate profile file must
// satisfy before it is unmarshaled.
//
//go:embed user_profile.schema.json
var UserProfile []byte

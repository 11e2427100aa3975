package schemas

import schemadocs "github.com/jonathan/autofill-engine/schemas"

// profileSchemaName identifies the profile schema in error messages.
const profileSchemaName = "user_profile"

// ValidateProfileFile validates a candidate profile JSON file against the
// embedded profile schema. The schema ships inside the binary, so the check
// works regardless of working directory.
func ValidateProfileFile(profilePath string) error {
	return ValidateFile(profileSchemaName, schemadocs.UserProfile, profilePath)
}

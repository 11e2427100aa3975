package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/autofill-engine/internal/schemas"
	"github.com/jonathan/autofill-engine/internal/types"
)

var validate = validator.New()

// Load reads a user profile from a JSON file, validates it against the
// bundled schema and the struct tags, and fills in the keyword index when
// the host did not precompute one.
func Load(path string) (*types.UserProfile, error) {
	if err := schemas.ValidateProfileFile(path); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var p types.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	if len(p.KeywordIndex) == 0 {
		p.KeywordIndex = BuildKeywordIndex(&p)
	}
	return &p, nil
}

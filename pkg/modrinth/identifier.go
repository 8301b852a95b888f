package modrinth

import (
	"regexp"

	"github.com/HelixLauncher/ferinth/internal/constants"
)

// idPattern matches the character set Modrinth accepts for IDs and
// slugs: alphanumerics plus underscore, hyphen, and period.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID checks that an ID or slug is syntactically acceptable
// before it is embedded in a request path. Empty strings, strings over
// the platform's length bound, and strings containing characters outside
// the permitted set fail with an *InvalidIdentifierError, so a malformed
// request is rejected before any network traffic.
func ValidateID(id string) error {
	if id == "" || len(id) > constants.MaxIdentifierLength || !idPattern.MatchString(id) {
		return &InvalidIdentifierError{ID: id}
	}

	return nil
}

// ValidateIDs checks every ID in order, returning the first failure.
// Batch operations use this to fail closed before issuing a request.
func ValidateIDs(ids []string) error {
	for _, id := range ids {
		err := ValidateID(id)
		if err != nil {
			return err
		}
	}

	return nil
}

// Package uid generates the string identifiers used for lists and items.
package uid

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a unique identifier of the form "<prefix>_<uuid>".
// A trailing underscore on the prefix is tolerated so call sites can
// pass either "list" or "list_". Uniqueness within one install is all
// that is required; collisions are not defended against.
func New(prefix string) string {
	p := strings.TrimSuffix(prefix, "_")
	return p + "_" + uuid.NewString()
}

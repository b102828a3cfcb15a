// Package sanitize strips dangerous markup from user-supplied rich text
// before it is persisted.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// UGC sanitizes user generated content, keeping common formatting tags
// while removing scripts, event handlers and dangerous URL schemes.
func UGC(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// UGCPtr sanitizes an optional text field in place and returns it.
func UGCPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := UGC(*s)
	return &clean
}

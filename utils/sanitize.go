// utils/sanitize.go - clan tag to filename token
package utils

import "regexp"

var (
	leadingHash = regexp.MustCompile(`^#`)
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// SanitizeTag maps a clan tag to a token that is safe in a filename: the
// leading '#' is stripped and every remaining character outside
// [A-Za-z0-9_] becomes '_'. The mapping is idempotent but not injective:
// two distinct tags can share a token. That ambiguity is an accepted
// property of the storage layout, not something to fix here.
func SanitizeTag(tag string) string {
	return unsafeChars.ReplaceAllString(leadingHash.ReplaceAllString(tag, ""), "_")
}

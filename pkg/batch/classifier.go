package batch

import "strings"

// Filter decides which per-item errors are worth retrying. Matching is
// case-insensitive substring matching on the server's error message.
type Filter struct {
	// Include, when non-empty, restricts retries to messages matching at
	// least one entry.
	Include []string
	// Exclude vetoes retries for matching messages, regardless of
	// Include.
	Exclude []string
}

// Retriable reports whether an item with the given error message should
// be re-enqueued.
func (f Filter) Retriable(message string) bool {
	if message == "" {
		return false
	}
	msg := strings.ToLower(message)
	for _, pat := range f.Exclude {
		if strings.Contains(msg, strings.ToLower(pat)) {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, pat := range f.Include {
		if strings.Contains(msg, strings.ToLower(pat)) {
			return true
		}
	}
	return false
}

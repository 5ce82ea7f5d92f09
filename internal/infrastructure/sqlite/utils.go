package sqlite

import "strings"

// isUniqueViolation reports whether err is a unique constraint violation. The
// sqlite driver exposes no error codes worth matching, so this goes by the
// message.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

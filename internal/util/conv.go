package util

import "strconv"

// ParseID parses a numeric path segment. ok is false for anything that is
// not a positive integer; callers treat that as not-found.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

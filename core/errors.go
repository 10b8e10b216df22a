package core

import "errors"

var (
	// ErrStructure indicates malformed input: grouping markers missing or
	// opening/closing sentinel names mismatched. Not recoverable locally.
	ErrStructure = errors.New("core: malformed tag structure")

	// ErrFieldNotFound indicates a scoped field lookup or update addressed
	// a group code that does not exist in that scope.
	ErrFieldNotFound = errors.New("core: field not found")

	// ErrMalformedTag indicates a tag pair that could not be lexed (a
	// non-numeric group code line or a truncated pair).
	ErrMalformedTag = errors.New("core: malformed tag")
)

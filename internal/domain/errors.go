package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound marks a lookup miss: the queried pinyin or onset has no
	// records in the dataset. It is an outcome, not a failure; callers
	// render it as a user-facing message.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a contract violation such as an empty syllable
	// passed to the decomposer.
	ErrValidation = errors.New("validation error")
)

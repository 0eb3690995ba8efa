package corpus

import "errors"

var (
	// ErrOptionViolation indicates an Option received a meaningless value.
	ErrOptionViolation = errors.New("corpus: invalid option value")

	// ErrRead indicates the corpus reader failed.
	ErrRead = errors.New("corpus: read failed")
)

package puzzle

import "errors"

// ErrReadFailed wraps any error surfaced by the underlying reader while
// scanning for puzzle tokens.
var ErrReadFailed = errors.New("puzzle: failed reading input")

package analyses

import "errors"

// ErrNotFound indicates the analysis does not exist or belongs to someone else.
var ErrNotFound = errors.New("analysis not found")

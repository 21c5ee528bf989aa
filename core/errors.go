package core

import "errors"

// ErrForbidden is a sentinel error for failed authorization checks. Handlers
// match it with errors.Is to map authorization failures to 403 instead of
// the generic 500 used for downstream failures.
var ErrForbidden = errors.New("forbidden")

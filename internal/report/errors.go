package report

import "errors"

// All of these are recovered locally: none of them aborts other users or
// other events in a batch run.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrFetchFailed      = errors.New("event fetch failed")
	ErrMalformedEvent   = errors.New("malformed event")
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectForbidden = errors.New("project access denied")
)

// ABOUTME: Domain error taxonomy for the access service
// ABOUTME: Sentinel errors callers match with errors.Is instead of string comparison

package access

import "errors"

// Domain errors. Anything not matching one of these is an internal
// storage or hashing failure and maps to InternalError at the boundary.
var (
	ErrConflict           = errors.New("username or email already in use")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTaskNotFound       = errors.New("task not found")
	ErrSettingsNotFound   = errors.New("no settings found for the account")
)

package service

import "errors"

// Error taxonomy shared by every service. Controllers perform one exhaustive
// mapping from these sentinels to HTTP status codes; anything unmatched is a
// server error that must not leak its text to the client.
var (
	// ErrDuplicateUsername rejects a signup for a username that is taken.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrDuplicateEmail rejects a signup for an email that is taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials rejects a login. Unknown username and wrong
	// password intentionally collapse into this one error so that responses
	// cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrNotFound reports that an addressed resource does not exist.
	ErrNotFound = errors.New("not found")
)

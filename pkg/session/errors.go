package session

import "errors"

// Common errors returned by the session store.
var (
	// ErrNilSession is returned when saving a nil session.
	ErrNilSession = errors.New("session cannot be nil")

	// ErrNotJWT is returned when a token is not a decodable JWT.
	ErrNotJWT = errors.New("token is not a JWT")

	// ErrNoExpiry is returned when a JWT carries no exp claim.
	ErrNoExpiry = errors.New("token has no expiry")
)

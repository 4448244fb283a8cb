package publish

import "errors"

// ErrNotLoggedIn is returned when there is no session with a token.
var ErrNotLoggedIn = errors.New("not logged in")

// Package session persists the single local login session.
//
// The session binds one account identity and its bearer token to one
// backend server. It lives in a small YAML file at a well-known per-user
// path; an absent or unreadable file means "not logged in".
//
// Example usage:
//
//	store := session.NewStore(session.Config{}, logger.Default())
//
//	sess, ok := store.Load()
//	if !ok || !sess.Valid() {
//	    return errors.New("not logged in")
//	}
//
//	if err := store.Save(sess); err != nil {
//	    return err
//	}
package session

// Session is one authenticated identity bound to one server.
//
// A Session with an empty Token is not logged in.
type Session struct {
	// Identity is the account's login identifier (email).
	Identity string `yaml:"email"`

	// Token is the opaque bearer credential.
	Token string `yaml:"token"`

	// SubjectID is the backend-assigned account ID.
	SubjectID string `yaml:"user_id"`

	// ServerURL is the backend base URL, without a trailing slash.
	ServerURL string `yaml:"server"`
}

// Valid reports whether the session can authorize requests.
func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}

// Store loads, saves, and clears the persisted session.
type Store interface {
	// Load reads the persisted session.
	//
	// ok is false when no file exists or it cannot be parsed.
	Load() (sess *Session, ok bool)

	// Save writes the session, replacing any previous one.
	//
	// Creates the containing directory if missing.
	Save(sess *Session) error

	// Clear removes the persisted session.
	//
	// Does not error if no session exists.
	Clear() error

	// Path returns the session file path.
	Path() string
}

// Config contains session store configuration.
type Config struct {
	// Path is the session file path.
	// Default: DefaultPath().
	Path string
}

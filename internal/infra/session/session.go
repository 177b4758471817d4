// Package session binds a server-trusted user identity to a client through a signed cookie.
package session

// Session is the per-request identity state. A zero Session is anonymous.
// It is not safe for concurrent use; each request owns its own.
type Session struct {
	userID   string
	modified bool
}

// NewSession returns an anonymous session.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) UserID() string {
	return s.userID
}

// SetUserID makes the session authenticated as id, replacing any earlier identity.
func (s *Session) SetUserID(id string) {
	s.userID = id
	s.modified = true
}

// Clear returns the session to anonymous.
func (s *Session) Clear() {
	s.userID = ""
	s.modified = true
}

func (s *Session) IsAuthenticated() bool {
	return s.userID != ""
}

// Modified reports whether the session changed since it was loaded and must be written back.
func (s *Session) Modified() bool {
	return s.modified
}

package services

import "github.com/dmitrijs2005/pmvault/internal/cryptox"

// Session is the result of a successful login. It owns Key; callers must
// Close it on every exit path, typically with defer right after Login.
type Session struct {
	UserID   int64
	Username string
	Key      *cryptox.SessionKey
}

// Close destroys the session key. It is safe to call more than once and on a
// nil Session.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.Key.Destroy()
}

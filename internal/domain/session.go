package domain

// Session is the single persisted record of the currently authenticated
// identity. A zero Session marshals to {} — the empty form of the
// currentSession document.
type Session struct {
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
}

// IsZero reports whether the session carries no identity.
// A session with an empty username is treated as logged out regardless of
// any other field.
func (s Session) IsZero() bool {
	return s.Username == ""
}

package conversation

import (
	"strconv"
	"time"
)

// Session identifies one logical conversation with the agent backend.
// The thread id is derived from the wall clock at construction, matches
// the lifetime of one chat run and is never persisted. The token and
// user id are read-only for the session's lifetime; an empty token
// means the conversation is anonymous.
type Session struct {
	ThreadID string
	Token    string
	UserID   string
	Username string
}

// NewSession creates a session with a fresh thread id.
func NewSession(token, userID, username string) *Session {
	return &Session{
		ThreadID: strconv.FormatInt(time.Now().UnixMilli(), 10),
		Token:    token,
		UserID:   userID,
		Username: username,
	}
}

// Anonymous reports whether the session carries no bearer token.
func (s *Session) Anonymous() bool {
	return s.Token == ""
}

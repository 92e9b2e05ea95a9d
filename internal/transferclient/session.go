package transferclient

import (
	"github.com/google/uuid"
)

// Session identifies the signed-in user. Every operation takes one
// explicitly; nothing is read from global state.
type Session struct {
	UserID uuid.UUID
	Token  string
}

func (s Session) valid() bool {
	return s.UserID != uuid.Nil && s.Token != ""
}

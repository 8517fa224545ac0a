package conversation

import (
	"github.com/google/uuid"

	"github.com/gardeo/concierge/pkg/gateway"
)

// Author distinguishes who produced a turn.
type Author string

const (
	AuthorUser  Author = "user"
	AuthorAgent Author = "agent"
)

// PendingKind selects which waiting indicator a pending placeholder shows.
type PendingKind string

const (
	PendingGeneric   PendingKind = "generic"
	PendingSearching PendingKind = "searching"
	PendingBooking   PendingKind = "booking"
	PendingCalendar  PendingKind = "add_to_calendar"
)

// Turn is one message in the conversation. Turns are immutable once
// appended; the only exception is the transient pending placeholder,
// which the log replaces with the resolved turn.
type Turn struct {
	ID      string
	Author  Author
	Text    string
	Pending bool
	Kind    PendingKind
	Reply   *gateway.AgentReply
}

// NewUserTurn creates a turn for text the user typed or a synthesized
// instruction sent on the user's behalf.
func NewUserTurn(text string) Turn {
	return Turn{ID: uuid.NewString(), Author: AuthorUser, Text: text}
}

// NewAgentTurn creates a resolved agent turn carrying the raw reply so
// the widget resolver can inspect its state and payload later.
func NewAgentTurn(reply *gateway.AgentReply) Turn {
	return Turn{ID: uuid.NewString(), Author: AuthorAgent, Text: reply.Text, Reply: reply}
}

// NewNoticeTurn creates an agent-authored turn with fixed local text,
// used for greetings, apologies and the authorization timeout notice.
func NewNoticeTurn(text string) Turn {
	return Turn{ID: uuid.NewString(), Author: AuthorAgent, Text: text}
}

func newPendingTurn(kind PendingKind) Turn {
	if kind == "" {
		kind = PendingGeneric
	}
	return Turn{ID: uuid.NewString(), Author: AuthorAgent, Pending: true, Kind: kind}
}

package conversation

import (
	"strconv"
	"testing"

	"github.com/gardeo/concierge/pkg/gateway"
)

func pendingCount(l *Log) int {
	n := 0
	for _, t := range l.Turns() {
		if t.Pending {
			n++
		}
	}
	return n
}

func TestStartPendingRejectsSecondPlaceholder(t *testing.T) {
	l := NewLog()
	l.Append(NewUserTurn("Find me a room in Galle"))

	if _, err := l.StartPending(PendingSearching); err != nil {
		t.Fatalf("first StartPending: %v", err)
	}
	if _, err := l.StartPending(PendingBooking); err != ErrPendingTurn {
		t.Fatalf("second StartPending error = %v, expected ErrPendingTurn", err)
	}
	if got := pendingCount(l); got != 1 {
		t.Errorf("pending turns = %d, expected 1", got)
	}

	// Once resolved, a new placeholder is allowed again.
	l.ResolvePending(NewNoticeTurn("done"))
	if _, err := l.StartPending(PendingGeneric); err != nil {
		t.Errorf("StartPending after resolve: %v", err)
	}
	if got := pendingCount(l); got != 1 {
		t.Errorf("pending turns after resolve+start = %d, expected 1", got)
	}
}

func TestResolvePendingReplacesPlaceholder(t *testing.T) {
	l := NewLog()
	l.Append(NewUserTurn("hello"))
	if _, err := l.StartPending(PendingGeneric); err != nil {
		t.Fatal(err)
	}

	reply := &gateway.AgentReply{ID: "m-1", Text: "Hi there", FrontendState: "get_preferences"}
	l.ResolvePending(NewAgentTurn(reply))

	turns := l.Turns()
	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, expected 2", len(turns))
	}
	last := turns[len(turns)-1]
	if last.Pending {
		t.Error("resolved turn should not be pending")
	}
	if last.Text != "Hi there" || last.Reply != reply {
		t.Errorf("resolved turn = %+v", last)
	}
	if l.HasPending() {
		t.Error("log should have no pending turn after resolve")
	}
}

func TestFailPendingSubstitutesApology(t *testing.T) {
	l := NewLog()
	l.Append(NewUserTurn("book it"))
	if _, err := l.StartPending(PendingBooking); err != nil {
		t.Fatal(err)
	}

	l.FailPending(ApologyBooking)

	turns := l.Turns()
	last := turns[len(turns)-1]
	if last.Author != AuthorAgent || last.Text != ApologyBooking {
		t.Errorf("failure turn = %+v", last)
	}
	if l.HasPending() {
		t.Error("placeholder should be gone after FailPending")
	}
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	l := NewLog()
	for i := 0; i < 5; i++ {
		l.Append(NewUserTurn(strconv.Itoa(i)))
	}
	turns := l.Turns()
	for i, turn := range turns {
		if turn.Text != strconv.Itoa(i) {
			t.Fatalf("turns[%d].Text = %q", i, turn.Text)
		}
	}
}

func TestOnAppendHookFires(t *testing.T) {
	l := NewLog()
	var seen []Turn
	l.SetOnAppend(func(turn Turn) { seen = append(seen, turn) })

	l.Append(NewUserTurn("one"))
	if _, err := l.StartPending(PendingGeneric); err != nil {
		t.Fatal(err)
	}
	l.ResolvePending(NewNoticeTurn("two"))

	if len(seen) != 3 {
		t.Fatalf("hook fired %d times, expected 3", len(seen))
	}
	if !seen[1].Pending {
		t.Error("second hook call should carry the pending placeholder")
	}
	if seen[2].Text != "two" {
		t.Errorf("third hook call text = %q", seen[2].Text)
	}
}

func TestSessionThreadID(t *testing.T) {
	s := NewSession("", "", "")
	if _, err := strconv.ParseInt(s.ThreadID, 10, 64); err != nil {
		t.Errorf("thread id %q is not a timestamp: %v", s.ThreadID, err)
	}
	if !s.Anonymous() {
		t.Error("session without token should be anonymous")
	}
	if NewSession("tok", "u1", "maya").Anonymous() {
		t.Error("session with token should not be anonymous")
	}
}

func TestInstructionTexts(t *testing.T) {
	got := BookRoomInstruction("101", "7", "2025-04-01", "2025-04-04")
	expected := "Ok i am ok with booking details you provide. Lets book the room id : 101 at hotel id : 7 from 2025-04-01 to 2025-04-04."
	if got != expected {
		t.Errorf("BookRoomInstruction = %q", got)
	}

	got = AddToCalendarInstruction("b-55")
	expected = "Lets add the booking with booking id : b-55 to the calendar."
	if got != expected {
		t.Errorf("AddToCalendarInstruction = %q", got)
	}

	if Greeting("maya") != "Hello maya ! How can I help you today?" {
		t.Errorf("Greeting = %q", Greeting("maya"))
	}
}

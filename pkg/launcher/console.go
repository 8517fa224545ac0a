// Package launcher wires the gateway client, conversation log, widget
// resolver and authorization watcher into the interactive console chat.
package launcher

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/gardeo/concierge/pkg/authwatch"
	"github.com/gardeo/concierge/pkg/conversation"
	"github.com/gardeo/concierge/pkg/gateway"
	"github.com/gardeo/concierge/pkg/resolver"
	"github.com/gardeo/concierge/pkg/ui"
)

// GatewayClient is the slice of the gateway the console needs.
// *gateway.Client satisfies it.
type GatewayClient interface {
	Send(ctx context.Context, threadID, message string) (*gateway.AgentReply, error)
	States(ctx context.Context, threadID string) (*gateway.StateSnapshot, error)
}

// Prompter runs the interactive widget forms. The default implementation
// uses the huh forms in pkg/ui; tests substitute a scripted one.
type Prompter interface {
	StayPreferences() (ui.StayPreferences, error)
	SelectRoom(rooms []gateway.Room) (*gateway.Room, error)
	Confirm(title string) (bool, error)
}

type uiPrompter struct{}

func (uiPrompter) StayPreferences() (ui.StayPreferences, error) { return ui.ReadStayPreferences() }
func (uiPrompter) SelectRoom(rooms []gateway.Room) (*gateway.Room, error) {
	return ui.SelectRoom(rooms)
}
func (uiPrompter) Confirm(title string) (bool, error) { return ui.Confirm(title) }

// Config configures the console chat.
type Config struct {
	Gateway GatewayClient
	Session *conversation.Session
	Watcher *authwatch.Watcher

	// In/Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer

	// Prompter defaults to the huh forms.
	Prompter Prompter

	// OpenURL defaults to launching the system browser.
	OpenURL func(url string) error

	// Render defaults to glamour markdown rendering.
	Render func(text string) string

	// ShowSpinner enables the bubbletea pending indicator. Off in tests.
	ShowSpinner bool
}

// Console is one interactive chat run.
type Console struct {
	gateway     GatewayClient
	session     *conversation.Session
	watcher     *authwatch.Watcher
	in          io.Reader
	out         io.Writer
	prompter    Prompter
	openURL     func(string) error
	render      func(string) string
	showSpinner bool

	log *conversation.Log

	// Poller continuations are handed over here and drained by the
	// main loop between prompts.
	continuations chan func(ctx context.Context)
}

// New creates a console chat from cfg, filling in defaults.
func New(cfg Config) *Console {
	c := &Console{
		gateway:       cfg.Gateway,
		session:       cfg.Session,
		watcher:       cfg.Watcher,
		in:            cfg.In,
		out:           cfg.Out,
		prompter:      cfg.Prompter,
		openURL:       cfg.OpenURL,
		render:        cfg.Render,
		showSpinner:   cfg.ShowSpinner,
		log:           conversation.NewLog(),
		continuations: make(chan func(ctx context.Context), 4),
	}
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.prompter == nil {
		c.prompter = uiPrompter{}
	}
	if c.openURL == nil {
		c.openURL = browser.OpenURL
	}
	if c.render == nil {
		c.render = ui.SmartRender
	}
	return c
}

// Log exposes the conversation log, mainly for inspection after a run.
func (c *Console) Log() *conversation.Log { return c.log }

// Run drives the chat loop until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	defer c.watcher.Stop()

	greeting := conversation.NewNoticeTurn(conversation.Greeting(c.session.Username))
	c.log.Append(greeting)
	c.printAgent(greeting.Text)
	fmt.Fprintln(c.out, ui.NoticeStyle.Render("Type your message, /scenario for context, or exit to quit."))

	scanner := bufio.NewScanner(c.in)
	for {
		c.drainContinuations(ctx)

		fmt.Fprintf(c.out, "\n%s ", ui.UserLabel)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			return scanner.Err()
		case line == "/scenario":
			c.showScenario(ctx)
			continue
		}

		if err := c.sendUserMessage(ctx, line, conversation.PendingGeneric, conversation.ApologyMessage); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// sendUserMessage appends the user turn, holds a pending placeholder for
// the round trip, and resolves it with the agent reply or the apology.
func (c *Console) sendUserMessage(ctx context.Context, text string, kind conversation.PendingKind, apology string) error {
	c.log.Append(conversation.NewUserTurn(text))

	if _, err := c.log.StartPending(kind); err != nil {
		return err
	}

	var reply *gateway.AgentReply
	var sendErr error
	c.withSpinner(kind, func() {
		reply, sendErr = c.gateway.Send(ctx, c.session.ThreadID, text)
	})

	if sendErr != nil {
		log.Printf("launcher: gateway send failed: %v", sendErr)
		c.log.FailPending(apology)
		c.printAgent(apology)
		return nil
	}

	c.log.ResolvePending(conversation.NewAgentTurn(reply))
	c.printAgent(reply.Text)
	c.handleWidget(ctx, reply)
	return nil
}

// handleWidget renders and drives the widget attached to a reply.
func (c *Console) handleWidget(ctx context.Context, reply *gateway.AgentReply) {
	p := reply.Payload
	switch resolver.Resolve(reply) {
	case resolver.WidgetPreferencesForm:
		prefs, err := c.prompter.StayPreferences()
		if err != nil {
			log.Printf("launcher: preferences form: %v", err)
			return
		}
		msg := conversation.SearchInstruction(prefs.Location, prefs.CheckIn, prefs.CheckOut)
		c.echoUser(msg)
		_ = c.sendUserMessage(ctx, msg, conversation.PendingSearching, conversation.ApologyMessage)

	case resolver.WidgetRoomList:
		fmt.Fprintln(c.out, ui.RenderRoomList(p.Rooms))
		room, err := c.prompter.SelectRoom(p.Rooms)
		if err != nil {
			log.Printf("launcher: room selection: %v", err)
			return
		}
		if room == nil {
			return
		}
		msg := conversation.BookRoomInstruction(
			strconv.Itoa(room.RoomID), strconv.Itoa(room.HotelID), p.CheckIn, p.CheckOut)
		c.echoUser(msg)
		_ = c.sendUserMessage(ctx, msg, conversation.PendingBooking, conversation.ApologyBooking)

	case resolver.WidgetBookingSummary:
		fmt.Fprintln(c.out, ui.RenderBookingSummary(p.RoomDetails))
		if p.AuthorizationURL == "" {
			return
		}
		ok, err := c.prompter.Confirm("Confirm this booking?")
		if err != nil || !ok {
			return
		}
		c.authorize(ctx, p.AuthorizationURL, resolver.TokenBookingAuthorized, c.bookingContinuation(p))

	case resolver.WidgetConfirmButton:
		fmt.Fprintln(c.out, ui.RenderBookingSummary(p.BookingPreview))
		ok, err := c.prompter.Confirm("Authorize this booking in your browser?")
		if err != nil || !ok {
			// Skip contacts no backend.
			return
		}
		c.authorize(ctx, p.AuthorizationURL, resolver.TokenBookingAuthorized, c.bookingContinuation(p))

	case resolver.WidgetCalendarOptIn:
		ok, err := c.prompter.Confirm("Add this booking to your calendar?")
		if err != nil || !ok {
			return
		}
		c.authorize(ctx, p.AuthorizationURL, resolver.TokenCalendarAuthorized, c.calendarContinuation(p))
	}
}

// bookingContinuation builds the follow-up sent once the booking grant
// is observed. An empty string means there is nothing to send.
func (c *Console) bookingContinuation(p gateway.ToolPayload) string {
	details := p.BookingPreview
	if details == nil {
		details = p.RoomDetails
	}
	if details == nil {
		return ""
	}
	return conversation.BookRoomInstruction(
		strconv.Itoa(details.RoomID), strconv.Itoa(details.HotelID),
		details.CheckIn, details.CheckOut,
	)
}

func (c *Console) calendarContinuation(p gateway.ToolPayload) string {
	if p.BookingDetails == nil || p.BookingDetails.BookingID == "" {
		return ""
	}
	return conversation.AddToCalendarInstruction(p.BookingDetails.BookingID)
}

// authorize opens the grant URL in the browser and arms the watcher for
// the expected state token. The outcome is queued as a continuation for
// the main loop; the watcher callback never touches the terminal.
func (c *Console) authorize(ctx context.Context, url, token, continuation string) {
	if err := c.openURL(url); err != nil {
		log.Printf("launcher: open %s: %v", url, err)
		fmt.Fprintln(c.out, ui.NoticeStyle.Render("Open this link to authorize: "+url))
	} else {
		fmt.Fprintln(c.out, ui.NoticeStyle.Render("Waiting for you to finish authorizing in the browser..."))
	}

	kind := conversation.PendingBooking
	apology := conversation.ApologyBooking
	if token == resolver.TokenCalendarAuthorized {
		kind = conversation.PendingCalendar
		apology = conversation.ApologyCalendar
	}

	c.watcher.Arm(ctx, token, func(o authwatch.Outcome) {
		c.continuations <- func(ctx context.Context) {
			if o != authwatch.OutcomeAuthorized {
				notice := conversation.NewNoticeTurn(conversation.AuthorizationTimeout)
				c.log.Append(notice)
				c.printAgent(notice.Text)
				return
			}
			if continuation == "" {
				return
			}
			c.echoUser(continuation)
			_ = c.sendUserMessage(ctx, continuation, kind, apology)
		}
	})
}

func (c *Console) drainContinuations(ctx context.Context) {
	for {
		select {
		case fn := <-c.continuations:
			fn(ctx)
		default:
			return
		}
	}
}

// showScenario fetches the session state and explains what the
// conversation is currently doing.
func (c *Console) showScenario(ctx context.Context) {
	snap, err := c.gateway.States(ctx, c.session.ThreadID)
	if err != nil {
		log.Printf("launcher: state fetch: %v", err)
		fmt.Fprintln(c.out, ui.NoticeStyle.Render("Couldn't fetch the conversation state."))
		return
	}
	sc, ok := resolver.MatchScenario(snap)
	if !ok {
		fmt.Fprintln(c.out, ui.NoticeStyle.Render("Nothing in progress yet. Ask about a stay to get started."))
		return
	}
	fmt.Fprintln(c.out, ui.RenderScenarioCard(sc.Title, sc.Description))
}

func (c *Console) printAgent(text string) {
	fmt.Fprintf(c.out, "\n%s %s\n", ui.AgentLabel, strings.TrimRight(c.render(text), "\n"))
}

// echoUser prints a synthesized instruction the way a typed message
// would appear, so the transcript stays faithful to what was sent.
func (c *Console) echoUser(text string) {
	fmt.Fprintf(c.out, "\n%s %s\n", ui.UserLabel, text)
}

func (c *Console) withSpinner(kind conversation.PendingKind, fn func()) {
	if !c.showSpinner {
		fn()
		return
	}
	p := tea.NewProgram(ui.NewSpinner(spinnerText(kind)), tea.WithOutput(os.Stdout))
	done := make(chan struct{})
	go func() {
		_, _ = p.Run()
		close(done)
	}()
	fn()
	p.Quit()
	<-done
}

func spinnerText(kind conversation.PendingKind) string {
	switch kind {
	case conversation.PendingSearching:
		return "Searching rooms..."
	case conversation.PendingBooking:
		return "Working on your booking..."
	case conversation.PendingCalendar:
		return "Updating your calendar..."
	default:
		return "Thinking..."
	}
}

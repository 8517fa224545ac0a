// Package resolver maps agent reply states to the interactive widget,
// if any, that accompanies the reply's text.
package resolver

import "github.com/gardeo/concierge/pkg/gateway"

// Widget enumerates the secondary affordances rendered under an agent turn.
type Widget string

const (
	WidgetNone            Widget = ""
	WidgetPreferencesForm Widget = "preferences_form"
	WidgetRoomList        Widget = "room_list"
	WidgetBookingSummary  Widget = "booking_summary"
	WidgetConfirmButton   Widget = "confirm_button"
	WidgetCalendarOptIn   Widget = "calendar_opt_in"
)

// Frontend state tags reported by the gateway. The set is closed:
// anything else resolves to no widget.
const (
	StateGetPreferences      = "get_preferences"
	StateShowRooms           = "show_rooms"
	StateBookingConfirmation = "booking_confirmation"
	StateBookingPreview      = "BOOKING_PREVIEW"
	StateBookingCompleted    = "BOOKING_COMPLETED"
)

// Authorization state tokens observed out-of-band via the state
// endpoint. The backend spells AUTORIZED without the H.
const (
	TokenBookingAuthorized  = "BOOKING_AUTORIZED"
	TokenCalendarAuthorized = "CALENDAR_AUTORIZED"
)

// Resolve decides which widget to render under one agent reply. It
// never fails: unknown states and payloads missing their required
// fields degrade to WidgetNone.
func Resolve(reply *gateway.AgentReply) Widget {
	if reply == nil {
		return WidgetNone
	}
	p := reply.Payload
	switch reply.FrontendState {
	case StateGetPreferences:
		return WidgetPreferencesForm
	case StateShowRooms:
		if len(p.Rooms) > 0 {
			return WidgetRoomList
		}
	case StateBookingConfirmation:
		if p.RoomDetails != nil && p.RoomDetails.RoomID != 0 {
			return WidgetBookingSummary
		}
	case StateBookingPreview:
		if p.AuthorizationURL != "" {
			return WidgetConfirmButton
		}
	case StateBookingCompleted:
		if p.AuthorizationURL != "" {
			return WidgetCalendarOptIn
		}
	}
	return WidgetNone
}

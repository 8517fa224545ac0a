package gateway

import "encoding/json"

// Room is a single search result inside a show_rooms tool payload.
type Room struct {
	RoomID        int     `json:"room_id"`
	HotelID       int     `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	HotelLocation string  `json:"hotel_location,omitempty"`
	HotelRating   float64 `json:"hotel_rating,omitempty"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
}

// BookingPreview carries a priced booking summary: the room, the stay
// dates and the quoted total. The gateway sends this shape both as
// room_details on booking_confirmation and as booking_preview on
// BOOKING_PREVIEW; ids are numeric like everywhere else on the wire.
type BookingPreview struct {
	RoomID        int     `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
	HotelID       int     `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	HotelRating   float64 `json:"hotel_rating,omitempty"`
	IsAvailable   bool    `json:"is_available,omitempty"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
}

// BookingDetails identifies a completed booking.
type BookingDetails struct {
	BookingID string `json:"booking_id"`
}

// ToolPayload is the canonical tool_response schema. Which fields are
// populated depends on the reply's frontend state: rooms plus the date
// range for show_rooms, room_details plus authorization_url for
// booking_confirmation, authorization_url plus booking_preview for
// BOOKING_PREVIEW, and authorization_url plus booking_details for
// BOOKING_COMPLETED.
type ToolPayload struct {
	Rooms            []Room          `json:"rooms,omitempty"`
	CheckIn          string          `json:"check_in,omitempty"`
	CheckOut         string          `json:"check_out,omitempty"`
	RoomDetails      *BookingPreview `json:"room_details,omitempty"`
	AuthorizationURL string          `json:"authorization_url,omitempty"`
	BookingPreview   *BookingPreview `json:"booking_preview,omitempty"`
	BookingDetails   *BookingDetails `json:"booking_details,omitempty"`
}

// AgentReply is one reply from the agent gateway. Payload is the decoded
// tool_response; a tool_response that is absent, a bare string, or
// otherwise malformed leaves Payload zero-valued so the widget resolver
// degrades to rendering nothing.
type AgentReply struct {
	ID            string
	Text          string
	FrontendState string
	Payload       ToolPayload
}

type wireReply struct {
	ID       string `json:"id"`
	Response struct {
		ChatResponse string          `json:"chat_response"`
		ToolResponse json.RawMessage `json:"tool_response"`
	} `json:"response"`
	FrontendState string `json:"frontend_state"`
}

// UnmarshalJSON decodes the gateway wire shape
// {id, response: {chat_response, tool_response}, frontend_state}.
func (r *AgentReply) UnmarshalJSON(data []byte) error {
	var w wireReply
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.ID = w.ID
	r.Text = w.Response.ChatResponse
	r.FrontendState = w.FrontendState
	r.Payload = ToolPayload{}
	if len(w.Response.ToolResponse) > 0 {
		// Best effort: a non-object tool_response is not an error.
		_ = json.Unmarshal(w.Response.ToolResponse, &r.Payload)
	}
	return nil
}

// StateSnapshot is the session state set for one thread as returned by
// GET /state/{threadId}. Each fetch replaces the previous snapshot; no
// history is kept client-side.
type StateSnapshot struct {
	State  string   `json:"state,omitempty"`
	States []string `json:"states"`
}

// Contains reports whether the snapshot includes the given state token.
func (s *StateSnapshot) Contains(token string) bool {
	if s == nil || token == "" {
		return false
	}
	for _, st := range s.States {
		if st == token {
			return true
		}
	}
	return s.State == token
}

package conversation

import "fmt"

// Fixed apology texts substituted for a failed gateway call. One per
// continuation flavor so the failure reads naturally in context.
const (
	ApologyMessage  = "Sorry, I couldn't process your message. Please try again."
	ApologyBooking  = "Sorry, I couldn't process your booking request. Please try again."
	ApologyCalendar = "Sorry, I couldn't add the event to your calendar. Please try again."

	// AuthorizationTimeout is appended when the authorization poller
	// exhausts its attempts without seeing the expected state.
	AuthorizationTimeout = "The authorization didn't complete in time. Please try again."
)

// Greeting is the locally authored opening turn of a chat session.
func Greeting(username string) string {
	if username == "" {
		return "Hello ! How can I help you today?"
	}
	return fmt.Sprintf("Hello %s ! How can I help you today?", username)
}

// SearchInstruction synthesizes the room search message sent when the
// preferences form is submitted.
func SearchInstruction(location, checkIn, checkOut string) string {
	return fmt.Sprintf("I want to book a room in %s from %s to %s.", location, checkIn, checkOut)
}

// BookRoomInstruction synthesizes the booking continuation named by a
// room id, hotel id and date range. The wording matches what the agent
// backend was trained against, so keep it verbatim.
func BookRoomInstruction(roomID, hotelID, checkIn, checkOut string) string {
	return fmt.Sprintf(
		"Ok i am ok with booking details you provide. Lets book the room id : %s at hotel id : %s from %s to %s.",
		roomID, hotelID, checkIn, checkOut,
	)
}

// AddToCalendarInstruction synthesizes the calendar continuation for a
// completed booking.
func AddToCalendarInstruction(bookingID string) string {
	return fmt.Sprintf("Lets add the booking with booking id : %s to the calendar.", bookingID)
}

package resolver

import "github.com/gardeo/concierge/pkg/gateway"

// Scenario is one entry in the informational explainer shown alongside
// the conversation. It has no effect on conversation flow.
type Scenario struct {
	Name        string
	Title       string
	Description string
	MatchStates []string
}

// Scenarios is an ordered rule list evaluated first-match-wins against
// the fetched state snapshot. Order encodes priority: calendar beats
// booking beats hotel search.
var Scenarios = []Scenario{
	{
		Name:        "calendar",
		Title:       "Adding to your calendar",
		Description: "Your booking is done and the agent is helping you save the stay to your calendar.",
		MatchStates: []string{TokenCalendarAuthorized, "ADDED_TO_CALENDAR"},
	},
	{
		Name:        "booking",
		Title:       "Booking a room",
		Description: "The agent is walking you through confirming and authorizing your room booking.",
		MatchStates: []string{
			"BOOKING_CONFIRMATION_INITIATED",
			"BOOKING_CONFIRMATION_COMPLETED",
			"BOOKING_INITIATED",
			TokenBookingAuthorized,
			"BOOKING_COMPLETED",
		},
	},
	{
		Name:        "hotel-search",
		Title:       "Finding you a room",
		Description: "The agent is searching Gardeo properties for rooms matching your dates and destination.",
		MatchStates: []string{"FETCHED_HOTELS", "FETCHED_ROOMS", "SEARCHED_ROOMS"},
	},
}

// MatchScenario returns the first scenario whose match set intersects
// the snapshot's states, or false when nothing matches.
func MatchScenario(snap *gateway.StateSnapshot) (Scenario, bool) {
	for _, sc := range Scenarios {
		for _, token := range sc.MatchStates {
			if snap.Contains(token) {
				return sc, true
			}
		}
	}
	return Scenario{}, false
}

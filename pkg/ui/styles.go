package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gardeo/concierge/pkg/gateway"
	"github.com/gardeo/concierge/pkg/hotels"
)

var (
	// Colors
	colorAccent = lipgloss.Color("63")  // Purple
	colorTitle  = lipgloss.Color("86")  // Cyan
	colorKey    = lipgloss.Color("244") // Gray
	colorValue  = lipgloss.Color("252") // White
	colorNotice = lipgloss.Color("226") // Yellow
	colorAgent  = lipgloss.Color("205") // Pink

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 2).
			Width(60)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true)

	keyStyle   = lipgloss.NewStyle().Foreground(colorKey)
	valueStyle = lipgloss.NewStyle().Foreground(colorValue)

	// Conversation labels
	AgentLabel  = lipgloss.NewStyle().Foreground(colorAgent).Bold(true).Render("concierge")
	UserLabel   = lipgloss.NewStyle().Foreground(colorTitle).Bold(true).Render("you")
	NoticeStyle = lipgloss.NewStyle().Foreground(colorNotice)
)

func field(k, v string) string {
	return fmt.Sprintf("%s %s", keyStyle.Render(k+":"), valueStyle.Render(v))
}

// RenderRoomCard renders one available room as a styled box.
func RenderRoomCard(r gateway.Room) string {
	var content strings.Builder
	content.WriteString(cardTitleStyle.Render(r.HotelName))
	if r.HotelLocation != "" {
		content.WriteString("  " + keyStyle.Render(r.HotelLocation))
	}
	content.WriteString("\n")
	content.WriteString(field("Room", fmt.Sprintf("%s (#%s)", r.RoomType, r.RoomNumber)))
	content.WriteString("\n")
	content.WriteString(field("Price", fmt.Sprintf("$%.2f / night", r.PricePerNight)))
	if r.HotelRating > 0 {
		content.WriteString("\n")
		content.WriteString(field("Rating", fmt.Sprintf("%.1f", r.HotelRating)))
	}
	return cardStyle.Render(content.String())
}

// RenderRoomList renders the full set of rooms returned by a search.
func RenderRoomList(rooms []gateway.Room) string {
	if len(rooms) == 0 {
		return NoticeStyle.Render("No rooms available for those dates.")
	}
	parts := make([]string, 0, len(rooms))
	for _, r := range rooms {
		parts = append(parts, RenderRoomCard(r))
	}
	return strings.Join(parts, "\n")
}

// RenderBookingSummary renders the details the agent proposes to book,
// with the quoted total when the agent has computed one.
func RenderBookingSummary(details *gateway.BookingPreview) string {
	if details == nil {
		return ""
	}
	hotel := details.HotelName
	if hotel == "" {
		hotel = fmt.Sprintf("#%d", details.HotelID)
	}
	room := details.RoomType
	if room == "" {
		room = fmt.Sprintf("#%d", details.RoomID)
	} else if details.RoomNumber != "" {
		room = fmt.Sprintf("%s (#%s)", room, details.RoomNumber)
	}

	var content strings.Builder
	content.WriteString(cardTitleStyle.Render("Booking summary"))
	content.WriteString("\n")
	content.WriteString(field("Hotel", hotel))
	content.WriteString("\n")
	content.WriteString(field("Room", room))
	content.WriteString("\n")
	content.WriteString(field("Check-in", details.CheckIn))
	content.WriteString("\n")
	content.WriteString(field("Check-out", details.CheckOut))
	if details.TotalPrice > 0 {
		content.WriteString("\n")
		content.WriteString(field("Total", fmt.Sprintf("$%.2f", details.TotalPrice)))
	}
	return cardStyle.Render(content.String())
}

// RenderBookingsList renders the account's reservations.
func RenderBookingsList(bookings []hotels.Booking) string {
	if len(bookings) == 0 {
		return NoticeStyle.Render("You have no bookings yet.")
	}
	parts := make([]string, 0, len(bookings))
	for _, b := range bookings {
		var content strings.Builder
		content.WriteString(cardTitleStyle.Render(fmt.Sprintf("Booking #%d", b.ID)))
		content.WriteString("  " + keyStyle.Render(b.Status))
		content.WriteString("\n")
		content.WriteString(field("Room", b.RoomType))
		content.WriteString("\n")
		content.WriteString(field("Stay", fmt.Sprintf("%s to %s", b.CheckIn, b.CheckOut)))
		content.WriteString("\n")
		content.WriteString(field("Guests", fmt.Sprintf("%d", b.Guests)))
		parts = append(parts, cardStyle.Render(content.String()))
	}
	return strings.Join(parts, "\n")
}

// RenderScenarioCard explains what the conversation can do from its
// current state.
func RenderScenarioCard(title, description string) string {
	var content strings.Builder
	content.WriteString(cardTitleStyle.Render(title))
	content.WriteString("\n")
	content.WriteString(valueStyle.Render(description))
	return cardStyle.Render(content.String())
}

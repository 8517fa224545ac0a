package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/gardeo/concierge/pkg/gateway"
)

// StayPreferences is what the preferences form collects.
type StayPreferences struct {
	Location string
	CheckIn  string
	CheckOut string
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// ReadStayPreferences runs the interactive preferences form.
func ReadStayPreferences() (StayPreferences, error) {
	var prefs StayPreferences
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where would you like to stay?").
				Placeholder("City or area").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("location is required")
					}
					return nil
				}).
				Value(&prefs.Location),
			huh.NewInput().
				Title("Check-in date").
				Placeholder("YYYY-MM-DD").
				Validate(validateDate).
				Value(&prefs.CheckIn),
			huh.NewInput().
				Title("Check-out date").
				Placeholder("YYYY-MM-DD").
				Validate(validateDate).
				Value(&prefs.CheckOut),
		),
	)
	if err := form.Run(); err != nil {
		return StayPreferences{}, err
	}
	return prefs, nil
}

// SelectRoom prompts the user to pick one of the rooms a search
// returned. It returns nil without error when the user declines.
func SelectRoom(rooms []gateway.Room) (*gateway.Room, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("no rooms to select from")
	}

	const skip = -1
	options := make([]huh.Option[int], 0, len(rooms)+1)
	for i, r := range rooms {
		label := fmt.Sprintf("%s - %s, $%.2f/night", r.HotelName, r.RoomType, r.PricePerNight)
		options = append(options, huh.NewOption(label, i))
	}
	options = append(options, huh.NewOption("None of these", skip))

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Pick a room to book").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	if selected == skip {
		return nil, nil
	}
	return &rooms[selected], nil
}

// Confirm asks a yes/no question.
func Confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

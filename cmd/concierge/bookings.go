package concierge

import (
	"context"
	"fmt"

	"github.com/gardeo/concierge/pkg/config"
	"github.com/gardeo/concierge/pkg/hotels"
	"github.com/gardeo/concierge/pkg/ui"
)

func handleBookingsCommand() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Print(ui.RenderErrorBox("Configuration Error", "Could not load the config file.", err.Error()))
		return err
	}
	creds := config.LoadEnv(cfg)
	if !creds.SignedIn() || creds.UserID == "" {
		return fmt.Errorf("sign in first: set %s and %s", config.EnvAccessToken, config.EnvUserID)
	}

	client, err := hotels.New(cfg.HotelAPI.BaseURL, creds.AccessToken)
	if err != nil {
		return err
	}

	bookings, err := client.UserBookings(context.Background(), creds.UserID)
	if err != nil {
		fmt.Print(ui.RenderErrorBox("Bookings Error", "Could not fetch your bookings.", err.Error()))
		return err
	}

	fmt.Println(ui.RenderBookingsList(bookings))
	return nil
}

package concierge

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gardeo/concierge/pkg/authwatch"
	"github.com/gardeo/concierge/pkg/config"
	"github.com/gardeo/concierge/pkg/conversation"
	"github.com/gardeo/concierge/pkg/gateway"
	"github.com/gardeo/concierge/pkg/launcher"
	"github.com/gardeo/concierge/pkg/ui"
)

func handleChatCommand() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Print(ui.RenderErrorBox("Configuration Error", "Could not load the config file.", err.Error()))
		return err
	}
	creds := config.LoadEnv(cfg)

	client, err := gateway.NewWithToken(cfg.Gateway.BaseURL, creds.AccessToken)
	if err != nil {
		fmt.Print(ui.RenderErrorBox("Gateway Error", "Invalid gateway base URL.", err.Error()))
		return err
	}

	session := conversation.NewSession(creds.AccessToken, creds.UserID, creds.Username)
	watcher := authwatch.New(authwatch.Config{
		Fetcher:     client,
		ThreadID:    session.ThreadID,
		Interval:    time.Duration(cfg.Authorization.PollIntervalSeconds) * time.Second,
		MaxAttempts: cfg.Authorization.PollMaxAttempts,
	})

	console := launcher.New(launcher.Config{
		Gateway:     client,
		Session:     session,
		Watcher:     watcher,
		ShowSpinner: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return console.Run(ctx)
}

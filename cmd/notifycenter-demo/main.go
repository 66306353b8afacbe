package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrymomot/notifycenter/pkg/config"
	"github.com/dmitrymomot/notifycenter/pkg/email"
	"github.com/dmitrymomot/notifycenter/pkg/logger"
	"github.com/dmitrymomot/notifycenter/pkg/notifycenter"
	"github.com/dmitrymomot/notifycenter/pkg/notifycenter/observers"
)

func main() {
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		log.Fatalf("Failed to load logger config: %v", err)
	}
	var centerCfg notifycenter.Config
	if err := config.Load(&centerCfg); err != nil {
		log.Fatalf("Failed to load notification center config: %v", err)
	}

	lg := logger.New(logger.FromConfig(logCfg), logger.WithOutput(os.Stderr))
	logger.SetAsDefault(lg)

	var emailCfg email.Config
	if err := config.Load(&emailCfg); err != nil {
		log.Fatalf("Failed to load email config: %v", err)
	}
	sender, err := newSender(emailCfg, lg)
	if err != nil {
		log.Fatalf("Failed to create email sender: %v", err)
	}

	center, err := notifycenter.NewFromConfig(centerCfg, notifycenter.WithLogger(lg))
	if err != nil {
		log.Fatalf("Failed to create notification center: %v", err)
	}

	fmt.Println("--- Sending first notification ---")
	unsubEmail := center.Subscribe(notifycenter.Func(func(message, _, _ string) { fmt.Println("📧 Email:", message) }))
	unsubPush := center.Subscribe(notifycenter.Func(func(message, _, _ string) { fmt.Println("🔔 Push:", message) }))
	center.Notify("Welcome to the app!")

	fmt.Println("\n--- Unsubscribing push notifications ---")
	unsubPush()

	fmt.Println("\n--- Sending second notification ---")
	center.Notify("You have a new message!")
	unsubEmail()

	fmt.Println("\n--- Preference-gated delivery ---")
	center.SetPreferences("user1", notifycenter.Preferences{"email": true, "push": false})
	center.SetPreferences("user2", notifycenter.Preferences{"email": true, "push": true})

	center.Subscribe(notifycenter.Func(func(message, userID, channel string) {
		fmt.Printf("%s -> %s: %s\n", channel, userID, message)
	}))
	center.Subscribe(observers.Email(
		sender,
		observers.StaticAddresses(map[string]string{
			"user1": "user1@example.com",
			"user2": "user2@example.com",
		}),
		observers.WithSubject("Demo notification"),
	))

	center.NotifyUser("Welcome", "user1", notifycenter.ChannelEmail)
	center.NotifyUser("Alert", "user1", notifycenter.ChannelPush)
	center.NotifyUser("Hello", "user2", notifycenter.ChannelEmail)
	center.NotifyUser("Update", "user2", notifycenter.ChannelPush)

	fmt.Printf("\nNotified users (%d): %v\n", center.NotifiedCount(), center.NotifiedUsers())
	fmt.Printf("Email opt-in: %v\n", center.UsersByPreference(notifycenter.ChannelEmail))
	fmt.Printf("Push opt-in: %v\n", center.UsersByPreference(notifycenter.ChannelPush))

	fmt.Println("\n--- Stored preferences ---")
	if err := center.DumpPreferences(os.Stdout); err != nil {
		log.Fatalf("Failed to dump preferences: %v", err)
	}
}

// newSender uses Postmark when a server token is configured and falls back to
// logging emails otherwise.
func newSender(cfg email.Config, lg *slog.Logger) (email.Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return email.NewLogSender(lg), nil
	}
	sender, err := email.NewPostmarkSender(cfg)
	if err != nil {
		return nil, err
	}
	return sender, nil
}

package notifycenter

import "log/slog"

// Option configures a Center.
type Option func(*Center)

// WithLogger sets the logger used for debug output. Without it the center
// logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultChannel sets the channel used by Notify when ViaChannel is not given.
func WithDefaultChannel(channel string) Option {
	return func(c *Center) {
		if channel != "" {
			c.defaultChannel = channel
		}
	}
}

// WithoutPreferences switches the center to plain fan-out: Notify neither
// consults preferences nor records notified users.
func WithoutPreferences() Option {
	return func(c *Center) {
		c.basic = true
	}
}

// NotifyOption scopes a single Notify call.
type NotifyOption func(*notifyParams)

type notifyParams struct {
	userID  string
	channel string
}

// ForUser targets the notification at userID. An empty id means no user.
func ForUser(userID string) NotifyOption {
	return func(p *notifyParams) { p.userID = userID }
}

// ViaChannel sets the channel type of the notification.
func ViaChannel(channel string) NotifyOption {
	return func(p *notifyParams) {
		if channel != "" {
			p.channel = channel
		}
	}
}

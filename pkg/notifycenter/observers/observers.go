package observers

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/notifycenter/pkg/broadcast"
	"github.com/dmitrymomot/notifycenter/pkg/logger"
	"github.com/dmitrymomot/notifycenter/pkg/notifycenter"
)

// Event is a dispatched notification in value form.
type Event struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
	Channel string `json:"channel"`
}

// ForChannels invokes next only for notifications sent on one of channels.
func ForChannels(next notifycenter.Observer, channels ...string) notifycenter.Observer {
	allowed := slices.Clone(channels)
	return notifycenter.Func(func(message, userID, channel string) {
		if slices.Contains(allowed, channel) {
			next.Observe(message, userID, channel)
		}
	})
}

// Log writes every notification to l at info level.
func Log(l *slog.Logger) notifycenter.Observer {
	if l == nil {
		l = slog.Default()
	}
	return notifycenter.Func(func(message, userID, channel string) {
		l.LogAttrs(context.Background(), slog.LevelInfo, "notification",
			slog.String("message", message),
			logger.UserID(userID),
			logger.Channel(channel),
		)
	})
}

// Broadcast forwards every notification into b as an Event. Slow subscribers
// of b lose events instead of blocking the dispatch.
func Broadcast(b broadcast.Broadcaster[Event]) notifycenter.Observer {
	return notifycenter.Func(func(message, userID, channel string) {
		err := b.Broadcast(context.Background(), broadcast.Message[Event]{Data: Event{
			Message: message,
			UserID:  userID,
			Channel: channel,
		}})
		if err != nil {
			slog.Default().LogAttrs(context.Background(), slog.LevelDebug, "broadcast observer: event dropped",
				logger.UserID(userID),
				logger.Error(err),
			)
		}
	})
}

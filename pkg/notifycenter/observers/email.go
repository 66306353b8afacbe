package observers

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/notifycenter/pkg/email"
	"github.com/dmitrymomot/notifycenter/pkg/logger"
	"github.com/dmitrymomot/notifycenter/pkg/notifycenter"
)

// AddressResolver maps a user ID to an email address.
type AddressResolver func(userID string) (string, bool)

// StaticAddresses resolves addresses from a fixed map.
func StaticAddresses(book map[string]string) AddressResolver {
	return func(userID string) (string, bool) {
		addr, ok := book[userID]
		return addr, ok
	}
}

type emailObserver struct {
	sender  email.Sender
	resolve AddressResolver
	subject string
	tag     string
	timeout time.Duration
	logger  *slog.Logger
}

// EmailOption configures the email observer.
type EmailOption func(*emailObserver)

// WithSubject sets the subject line of every email. Empty values are ignored.
func WithSubject(subject string) EmailOption {
	return func(o *emailObserver) {
		if subject != "" {
			o.subject = subject
		}
	}
}

// WithTag sets the Postmark tag attached to every email.
func WithTag(tag string) EmailOption {
	return func(o *emailObserver) { o.tag = tag }
}

// WithSendTimeout bounds each send. Non-positive durations are ignored.
func WithSendTimeout(d time.Duration) EmailOption {
	return func(o *emailObserver) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithEmailLogger sets the logger used for skipped users and send failures.
func WithEmailLogger(l *slog.Logger) EmailOption {
	return func(o *emailObserver) {
		if l != nil {
			o.logger = l
		}
	}
}

// Email sends notifications on the email channel to the address resolved for
// the user. Anonymous notifications and users without an address are skipped.
// Send failures are logged; observers cannot return errors.
func Email(sender email.Sender, resolve AddressResolver, opts ...EmailOption) notifycenter.Observer {
	o := &emailObserver{
		sender:  sender,
		resolve: resolve,
		subject: "New notification",
		timeout: 10 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *emailObserver) Observe(message, userID, channel string) {
	if channel != notifycenter.ChannelEmail || userID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	addr, ok := o.resolve(userID)
	if !ok {
		o.logger.LogAttrs(ctx, slog.LevelDebug, "email observer: no address for user",
			logger.UserID(userID),
		)
		return
	}

	err := o.sender.Send(ctx, email.SendParams{
		To:       addr,
		Subject:  o.subject,
		TextBody: message,
		Tag:      o.tag,
	})
	if err != nil {
		o.logger.LogAttrs(ctx, slog.LevelError, "email observer: send failed",
			logger.UserID(userID),
			logger.Channel(channel),
			logger.Error(err),
		)
	}
}

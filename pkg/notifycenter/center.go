package notifycenter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifycenter/pkg/logger"
)

// Observer receives every notification dispatched by a Center.
// userID is empty when the notification is not scoped to a user.
//
// Observers are compared with == when unsubscribing, so implement Observe on a
// pointer type to get identity semantics.
type Observer interface {
	Observe(message, userID, channel string)
}

// FuncObserver adapts a plain function to Observer. Each call to Func yields a
// distinct observer; reuse the returned value to subscribe it more than once.
type FuncObserver struct {
	fn func(message, userID, channel string)
}

// Func wraps fn as an Observer.
func Func(fn func(message, userID, channel string)) *FuncObserver {
	return &FuncObserver{fn: fn}
}

func (f *FuncObserver) Observe(message, userID, channel string) {
	f.fn(message, userID, channel)
}

// Subscription identifies one registered observer.
type Subscription struct {
	ID          string
	Unsubscribe func()
}

type entry struct {
	id       string
	observer Observer
}

// Center is a synchronous observer registry with per-user preference gating
// and tracking of notified users.
//
// All methods are safe for concurrent use. Observers run outside the lock on a
// snapshot of the registry, so they may subscribe, unsubscribe or notify from
// inside a dispatch.
type Center struct {
	mu sync.RWMutex

	observers []*entry

	notified      map[string]struct{}
	notifiedOrder []string

	preferences map[string]Preferences
	prefOrder   []string

	defaultChannel string
	basic          bool
	logger         *slog.Logger
}

// New creates an empty Center.
func New(opts ...Option) *Center {
	c := &Center{
		notified:       make(map[string]struct{}),
		preferences:    make(map[string]Preferences),
		defaultChannel: ChannelEmail,
		logger:         logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromConfig creates a Center from cfg. Explicit opts are applied after
// the config values. When cfg.PreferencesFile is set, the file is loaded with
// LoadPreferences.
func NewFromConfig(cfg Config, opts ...Option) (*Center, error) {
	base := []Option{WithDefaultChannel(cfg.DefaultChannel)}
	if !cfg.PreferenceGating {
		base = append(base, WithoutPreferences())
	}
	c := New(append(base, opts...)...)

	if cfg.PreferencesFile == "" {
		return c, nil
	}

	f, err := os.Open(cfg.PreferencesFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPreferencesFile, err)
	}
	defer f.Close()

	if err := c.LoadPreferences(f); err != nil {
		return nil, err
	}
	return c, nil
}

// Subscribe appends observer to the registry and returns a function that
// removes every registered entry equal to observer, including duplicates
// added by earlier Subscribe calls. The returned function is safe to call any
// number of times.
func (c *Center) Subscribe(observer Observer) func() {
	return c.SubscribeWithID(observer).Unsubscribe
}

// SubscribeWithID is Subscribe that also exposes the subscription identifier.
func (c *Center) SubscribeWithID(observer Observer) Subscription {
	e := &entry{id: uuid.NewString(), observer: observer}

	c.mu.Lock()
	c.observers = append(c.observers, e)
	c.mu.Unlock()

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "observer subscribed",
		logger.Component("notifycenter"),
		logger.SubscriptionID(e.id),
	)

	var once sync.Once
	return Subscription{
		ID: e.id,
		Unsubscribe: func() {
			once.Do(func() { c.remove(e) })
		},
	}
}

func (c *Center) remove(e *entry) {
	c.mu.Lock()
	c.observers = slices.DeleteFunc(c.observers, func(o *entry) bool {
		return o == e || sameObserver(o.observer, e.observer)
	})
	c.mu.Unlock()

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "observer unsubscribed",
		logger.Component("notifycenter"),
		logger.SubscriptionID(e.id),
	)
}

// sameObserver compares observers by ==. Observers whose dynamic type is not
// comparable only match their own entry.
func sameObserver(a, b Observer) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// ObserverCount returns the number of registered observers.
func (c *Center) ObserverCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.observers)
}

// SetPreferences replaces the whole preference record of userID.
// Keys absent from prefs are not merged from a previous record.
func (c *Center) SetPreferences(userID string, prefs Preferences) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.preferences[userID]; !ok {
		c.prefOrder = append(c.prefOrder, userID)
	}
	c.preferences[userID] = prefs.clone()
}

// GetPreferences returns a copy of the stored record for userID, or
// DefaultPreferences when none was stored.
func (c *Center) GetPreferences(userID string) Preferences {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preferencesLocked(userID)
}

func (c *Center) preferencesLocked(userID string) Preferences {
	if p, ok := c.preferences[userID]; ok {
		return p.clone()
	}
	return DefaultPreferences()
}

// WantsNotification reports whether userID has not opted out of channel.
// Only a stored literal false opts out.
func (c *Center) WantsNotification(userID, channel string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.wantsLocked(userID, channel)
}

func (c *Center) wantsLocked(userID, channel string) bool {
	if p, ok := c.preferences[userID]; ok {
		return p.Allows(channel)
	}
	return true
}

// Notify dispatches message to every registered observer in subscription order.
//
// When a user is given and has opted out of the channel, nothing is dispatched
// and the user is not recorded as notified. Panics raised by observers are not
// recovered and stop the remaining dispatch.
func (c *Center) Notify(message string, opts ...NotifyOption) {
	p := notifyParams{channel: c.defaultChannel}
	for _, opt := range opts {
		opt(&p)
	}

	c.mu.Lock()
	if !c.basic && p.userID != "" {
		if !c.wantsLocked(p.userID, p.channel) {
			c.mu.Unlock()
			c.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification suppressed by preferences",
				logger.Component("notifycenter"),
				logger.UserID(p.userID),
				logger.Channel(p.channel),
			)
			return
		}
		if _, seen := c.notified[p.userID]; !seen {
			c.notified[p.userID] = struct{}{}
			c.notifiedOrder = append(c.notifiedOrder, p.userID)
		}
	}
	snapshot := make([]Observer, len(c.observers))
	for i, e := range c.observers {
		snapshot[i] = e.observer
	}
	c.mu.Unlock()

	for _, observer := range snapshot {
		observer.Observe(message, p.userID, p.channel)
	}
}

// NotifyUser is Notify with positional user and channel arguments.
func (c *Center) NotifyUser(message, userID, channel string) {
	c.Notify(message, ForUser(userID), ViaChannel(channel))
}

// HasNotified reports whether userID has passed gating at least once.
func (c *Center) HasNotified(userID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.notified[userID]
	return ok
}

// NotifiedCount returns the number of distinct notified users.
func (c *Center) NotifiedCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.notified)
}

// NotifiedUsers returns the distinct notified users in first-notified order.
func (c *Center) NotifiedUsers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.notifiedOrder)
}

// UsersByPreference returns users whose stored record holds a literal true
// for channel, in the order their records were first stored.
//
// Users without a stored record are never returned even though Notify treats
// them as opted in.
func (c *Center) UsersByPreference(channel string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	users := make([]string, 0, len(c.prefOrder))
	for _, id := range c.prefOrder {
		if c.preferences[id].Enabled(channel) {
			users = append(users, id)
		}
	}
	return users
}

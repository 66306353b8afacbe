package notifycenter

import "maps"

// Well-known channel names. Any other string is accepted as a channel and is
// simply looked up in the preference record.
const (
	ChannelEmail = "email"
	ChannelPush  = "push"
	ChannelSMS   = "sms"
)

// Preferences is a per-user record keyed by channel name.
//
// Values are deliberately untyped: only a literal boolean false opts a user out
// of a channel. Missing keys, nil, 0 or "" all count as opted in.
type Preferences map[string]any

// DefaultPreferences returns a fresh opt-in record for every known channel.
func DefaultPreferences() Preferences {
	return Preferences{
		ChannelEmail: true,
		ChannelPush:  true,
		ChannelSMS:   true,
	}
}

// Allows reports whether the record does not hold a literal false for channel.
func (p Preferences) Allows(channel string) bool {
	v, ok := p[channel].(bool)
	return !ok || v
}

// Enabled reports whether the record holds a literal true for channel.
func (p Preferences) Enabled(channel string) bool {
	v, ok := p[channel].(bool)
	return ok && v
}

func (p Preferences) clone() Preferences {
	if p == nil {
		return Preferences{}
	}
	return maps.Clone(p)
}

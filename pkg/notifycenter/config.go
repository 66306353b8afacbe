package notifycenter

// Config holds center settings read from the environment.
type Config struct {
	DefaultChannel   string `env:"NOTIFY_DEFAULT_CHANNEL" envDefault:"email"`
	PreferenceGating bool   `env:"NOTIFY_PREFERENCE_GATING" envDefault:"true"`
	PreferencesFile  string `env:"NOTIFY_PREFERENCES_FILE"`
}

package logger

// Config holds logger settings read from the environment.
type Config struct {
	Service string `env:"SERVICE_NAME" envDefault:"notifycenter"`
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"text"`
}

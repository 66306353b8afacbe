// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for tag-driven parsing. Config structs live next
// to the packages that consume them (logger.Config, notifycenter.Config,
// email.Config) and are populated here:
//
//	var cfg notifycenter.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Errors wrap the sentinels ErrParsingConfig, ErrNilPointer and
// ErrLoadingEnvFile and can be matched with errors.Is.
package config

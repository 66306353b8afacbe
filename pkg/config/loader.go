package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv reads the given .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from environment variables using `env` field tags.
//
// When files are given they are loaded first with LoadEnv. Without files the
// default .env in the working directory is tried and silently skipped when
// missing.
//
// Example:
//
//	type CenterConfig struct {
//		DefaultChannel string `env:"NOTIFY_DEFAULT_CHANNEL" envDefault:"email"`
//	}
//
//	var cfg CenterConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(files) > 0 {
		if err := LoadEnv(files...); err != nil {
			return err
		}
	} else {
		_ = godotenv.Load()
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

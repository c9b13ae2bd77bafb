package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.NotificationSinkURL == "" {
		return errors.New("NOTIFICATION_SINK_URL environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}
	return nil
}

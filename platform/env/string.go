package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Debugw("config", "env", env, "default", def)
		return def
	}
	return value
}

// Must return the value of an env var, exiting the application if it is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Fatalw("config", "env", env, "ERROR", "required env var is not set")
	}
	return value
}

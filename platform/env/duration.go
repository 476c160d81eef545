package env

import (
	"go.uber.org/zap"
	"time"
)

// DurationDefault return the result of searching an env var, if the env var value is empty, return a default value as time.Duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	value := OrDefault(log, env, def)
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Warnw("config", "env", env, "value", value, "ERROR", err)
		duration, _ = time.ParseDuration(def)
	}
	return duration
}

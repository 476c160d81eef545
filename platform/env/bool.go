package env

import (
	"go.uber.org/zap"
	"strconv"
)

// BoolDefault return the result of searching an env var, if the env var value is empty, return a default value as bool.
// Accepts anything strconv.ParseBool does ("t", "true", "1", "f", ...)
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	value := OrDefault(log, env, def)
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnw("config", "env", env, "value", value, "ERROR", err)
		parsed, _ = strconv.ParseBool(def)
	}
	return parsed
}

package env

import (
	"go.uber.org/zap"
	"strconv"
)

// IntDefault returns the env var parsed as int, falling back to def when the var is empty or not a number
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	value := OrDefault(log, env, def)
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warnw("config", "env", env, "value", value, "ERROR", err)
		parsed, _ = strconv.Atoi(def)
	}
	return parsed
}

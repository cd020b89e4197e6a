package common

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogging configures logrus the way both cortile teachers do:
// text formatter, level from $GOXWM_LOG (falling back to Info).
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	level := log.InfoLevel
	if v := os.Getenv("GOXWM_LOG"); v != "" {
		if parsed, err := log.ParseLevel(v); err == nil {
			level = parsed
		} else {
			log.Warn("Invalid GOXWM_LOG level [", v, "], using info")
		}
	}
	log.SetLevel(level)
}

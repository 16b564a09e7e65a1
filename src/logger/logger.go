package logger

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger from LOG_LEVEL.
func Setup() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}

	log.SetLevel(level)
}

package logging

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Configure sets the level and output format of the process-wide logger.
func Configure(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)

	if format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// New returns a logger tagged with the component name to simplify traceability.
func New(component string) *log.Entry {
	return log.WithField("component", component)
}

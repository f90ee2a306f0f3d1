package utils

import (
	"os"

	"github.com/charmbracelet/log"
)

var logLevel = log.InfoLevel

// SetLogLevel sets the level used by loggers created afterwards.
func SetLogLevel(level string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	logLevel = l
	return nil
}

func NewLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel,
	})
}

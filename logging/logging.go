package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var logger = logrus.New()

// InitLogger sets the level and output format of the shared logger.
func InitLogger(level logrus.Level, format string) error {
	switch format {
	case FormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	logger.SetLevel(level)
	return nil
}

// GetLogger returns the process-wide logger. It is usable before InitLogger
// is called, with logrus defaults.
func GetLogger() *logrus.Logger {
	return logger
}

package log

import (
	"github.com/sirupsen/logrus"
)

// New creates a new logger with the specified
// configuration
func New(config *Config) Logger {
	props := LogrusLoggerProperties{}

	switch config.Level {
	case "debug":
		props.Level = logrus.DebugLevel
	case "info":
		props.Level = logrus.InfoLevel
	case "error":
		props.Level = logrus.ErrorLevel
	default:
		props.Level = logrus.WarnLevel
	}

	return NewLogrus(props)
}

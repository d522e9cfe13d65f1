// Package logger builds the structured logger shared by every subcommand.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to w. Unknown levels fall back to info.
func New(level string, w io.Writer) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logLevel)

	return log
}

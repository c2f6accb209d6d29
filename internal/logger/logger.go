package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the application logger. Production gets JSON output, everything
// else a text formatter with full timestamps.
func New(level string, production bool) *logrus.Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}

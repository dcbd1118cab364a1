// Package obslog provides the engine's structured logging, wrapping logrus.
package obslog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	log  *logrus.Logger
)

// Logger returns the process-wide engine logger, created lazily on first use.
func Logger() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
	return log
}

// SetDebug raises or lowers the logger's level; called by the CLI when
// --debug is supplied.
func SetDebug(enabled bool) {
	if enabled {
		Logger().SetLevel(logrus.DebugLevel)
	} else {
		Logger().SetLevel(logrus.InfoLevel)
	}
}

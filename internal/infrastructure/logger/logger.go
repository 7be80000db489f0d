package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// Get returns the process-wide logger.
func Get() *logrus.Logger {
	return logg
}

// SetLevel parses LOG_LEVEL style values; unknown values keep the current level.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logg.WithField("level", level).Warn("unknown log level; keeping current")
		return
	}
	logg.SetLevel(lvl)
}

// For returns an entry tagged with the area (customer, service, ...) and the
// architectural layer (handler, usecase, gateway, ...) that is logging.
func For(module, layer string) *logrus.Entry {
	return logg.WithFields(logrus.Fields{
		"module": module,
		"layer":  layer,
	})
}

func LogError(module string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   module,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logg.WithFields(fields).Error(err.Error())
}

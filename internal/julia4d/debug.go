package julia4d

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is the package logger. cmd/julia4d configures it through SetupLogger.
var Log = logrus.New()

// SetupLogger sets the log level by name; debug forces the debug level and
// turns on Debug.
func SetupLogger(level string, debug bool) error {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		Debug = true
		Log.SetLevel(logrus.DebugLevel)
		return nil
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)
	return nil
}

func DebugLog(format string, args ...interface{}) {
	if Debug {
		Log.Debugf(format, args...)
	}
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		Log.Debugf(format, args...)
	})
}

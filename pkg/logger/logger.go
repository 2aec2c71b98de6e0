package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init; Init applies
// the environment configuration.
var Log = logrus.New()

// Init configures the global logger from LOG_LEVEL (default "info") and
// LOG_FORMAT ("json" or "text"). Logs go to stderr so command output on
// stdout stays machine readable.
func Init() {
	Configure(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Configure sets output, level and formatter explicitly.
func Configure(out io.Writer, levelName, format string) {
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}

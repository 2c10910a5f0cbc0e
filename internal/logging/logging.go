// ABOUTME: Logger setup for the fitlog CLI and MCP server.
// ABOUTME: Configures logrus level, format, and optional rotating file output.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params controls logger setup.
type Params struct {
	LogFile string
	Level   string
	JSON    bool
}

// Setup configures the global logrus logger. Logs never go to stdout:
// stdout carries command output and the MCP stdio protocol.
// The returned closer releases the log file, if any.
func Setup(params Params) io.Closer {
	if params.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: params.LogFile == ""})
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.LogFile == "" {
		logrus.SetOutput(os.Stderr)
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFile, ".log") {
		params.LogFile += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false,
		Compress:   true,
	}
	logrus.SetOutput(lumberJackLogger)

	return lumberJackLogger
}

// GetLevel parses a level name. Unknown names fall back to warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

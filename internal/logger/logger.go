package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *log.Logger

// fileSink is non-nil while file logging is enabled
var fileSink *lumberjack.Logger

// FileOptions configures the rotating log file
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "glcompat",
	})
	Logger.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))
}

// parseLevel maps a level name to a log level, defaulting to INFO
func parseLevel(name string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	case "FATAL":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel overrides the level picked from LOG_LEVEL. An empty name keeps the
// current level.
func SetLevel(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	Logger.SetLevel(parseLevel(name))
}

// EnableFile tees log output into a rotating file
func EnableFile(opts FileOptions) {
	if fileSink != nil {
		_ = fileSink.Close()
	}
	fileSink = &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	Logger.SetOutput(io.MultiWriter(os.Stderr, fileSink))
}

// Close flushes and detaches the log file, if any
func Close() error {
	if fileSink == nil {
		return nil
	}
	err := fileSink.Close()
	fileSink = nil
	Logger.SetOutput(os.Stderr)
	return err
}

// SetOutput redirects all log output, used by tests
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Convenience functions for common operations
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Logger.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	Logger.Fatalf(format, args...)
}

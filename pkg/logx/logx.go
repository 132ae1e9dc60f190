// Package logx is a thin leveled-logging facade over logrus so callers
// never import the logging backend directly.
package logx

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Level uint32

const (
	LevelDebug Level = Level(logrus.DebugLevel)
	LevelInfo  Level = Level(logrus.InfoLevel)
	LevelWarn  Level = Level(logrus.WarnLevel)
	LevelError Level = Level(logrus.ErrorLevel)
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the global log level.
func SetLevel(level Level) {
	log.SetLevel(logrus.Level(level))
}

// WithField returns an entry carrying a structured field.
func WithField(key string, value any) *logrus.Entry {
	return log.WithField(key, value)
}

func Debug(args ...any)                 { log.Debug(args...) }
func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Info(args ...any)                  { log.Info(args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warn(args ...any)                  { log.Warn(args...) }
func Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func Error(args ...any)                 { log.Error(args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }
func Fatal(args ...any)                 { log.Fatal(args...) }
func Fatalf(format string, args ...any) { log.Fatalf(format, args...) }

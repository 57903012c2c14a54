// Package logging wraps logrus behind a small Logger interface.
//
// To log to the base logger:
//
//	logging.Base().Info("parameters selected")
//
// Packages usually log through a module-scoped logger:
//
//	var log = logging.Module("chaincfg")
package logging

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is an alias for logrus.Fields.
type Fields = logrus.Fields

// Logger is the subset of logrus used across the repository.
type Logger interface {
	With(key string, value interface{}) Logger
	WithFields(Fields) Logger

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

type logger struct {
	entry *logrus.Entry
}

var (
	baseOnce   sync.Once
	baseLogger *logrus.Logger
)

func base() *logrus.Logger {
	baseOnce.Do(func() {
		baseLogger = logrus.New()
		baseLogger.SetLevel(logrus.InfoLevel)
	})
	return baseLogger
}

// Base returns the process-wide logger.
func Base() Logger {
	return logger{entry: logrus.NewEntry(base())}
}

// Module returns a base logger tagged with the module name.
func Module(name string) Logger {
	return Base().With("module", name)
}

// NewLogger returns a standalone logger writing to w, mostly for tests.
func NewLogger(w io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	return logger{entry: logrus.NewEntry(l)}
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{entry: l.entry.WithField(key, value)}
}

func (l logger) WithFields(f Fields) Logger {
	return logger{entry: l.entry.WithFields(f)}
}

func (l logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

func (l logger) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l logger) Info(args ...interface{})  { l.entry.Info(args...) }
func (l logger) Warn(args ...interface{})  { l.entry.Warn(args...) }
func (l logger) Error(args ...interface{}) { l.entry.Error(args...) }

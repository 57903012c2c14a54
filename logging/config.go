package logging

import (
	"fmt"
	"io"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// Config mirrors the log.* command line flags.
type Config struct {
	Verbosity int    // 0=fatal .. 5=trace
	Format    string // text|json
	Color     bool
	SentryDSN string
}

// LevelFromVerbosity maps the numeric verbosity used on the command line onto
// logrus levels. Out of range values are clamped.
func LevelFromVerbosity(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.FatalLevel
	case v == 1:
		return logrus.ErrorLevel
	case v == 2:
		return logrus.WarnLevel
	case v == 3:
		return logrus.InfoLevel
	case v == 4:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// Configure applies cfg to the base logger. Output goes to w when it is not nil.
func Configure(cfg Config, w io.Writer) error {
	return configure(base(), cfg, w)
}

func configure(l *logrus.Logger, cfg Config, w io.Writer) error {
	if w != nil {
		l.SetOutput(w)
	}
	l.SetLevel(LevelFromVerbosity(cfg.Verbosity))

	switch cfg.Format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q (valid: text, json)", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("sentry hook: %w", err)
		}
		l.AddHook(hook)
	}
	return nil
}

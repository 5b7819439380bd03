package logging

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/classic-mines/internal/config"
)

// Setup applies the level, formatter and optional rotated log file from c to
// every logger given.
func Setup(c *config.Config, loggers ...*logrus.Logger) error {
	level := logrus.InfoLevel
	if c.Development() {
		level = logrus.DebugLevel
	}

	var hook logrus.Hook
	if c.Log.Path != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.Path,
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAge,
			Level:      level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", c.Log.Path, err)
		}
	}

	for _, log := range loggers {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		if hook != nil {
			log.AddHook(hook)
		}
	}
	return nil
}

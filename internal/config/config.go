package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	Path       string `json:"path"`
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`
}

type SessionConfig struct {
	TTL           Duration `json:"ttl"`
	SweepInterval Duration `json:"sweep_interval"`
}

type Config struct {
	Mode    string        `json:"mode"`
	Addr    string        `json:"addr"`
	Log     LogConfig     `json:"log"`
	Session SessionConfig `json:"session"`
}

func Default() *Config {
	return &Config{
		Mode: "production",
		Addr: ":8080",
		Log: LogConfig{
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Session: SessionConfig{
			TTL:           Duration{time.Hour},
			SweepInterval: Duration{time.Minute},
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":                   c.Mode,
		"addr":                   c.Addr,
		"log_path":               c.Log.Path,
		"log_max_size":           c.Log.MaxSize,
		"log_max_backups":        c.Log.MaxBackups,
		"log_max_age":            c.Log.MaxAge,
		"session_ttl":            c.Session.TTL.String(),
		"session_sweep_interval": c.Session.SweepInterval.String(),
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.Session.TTL.Duration <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.SweepInterval.Duration <= 0 {
		return fmt.Errorf("session sweep interval must be positive, got %s", c.Session.SweepInterval)
	}
	return nil
}

// Read loads the JSON config at path over [Default]. A missing file leaves
// the defaults in place. The DEVELOPMENT env variable, when set, overrides
// the mode.
func Read(path string) (*Config, error) {
	config := Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(b, config); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}
	if development, ok := EnvDevelopment(); ok {
		if development {
			config.Mode = "development"
		} else {
			config.Mode = "production"
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

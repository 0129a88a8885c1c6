package config

import (
	"errors"
	"fmt"

	"github.com/haskel/cytoscan/internal/api"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}

	if err := c.Model.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("model: %w", err))
	}

	if err := c.Picker.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("picker: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) Validate() error {
	var errs []error

	if s.Host == "" {
		errs = append(errs, errors.New("host must not be empty"))
	}

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", s.Port))
	}

	if s.TimeoutMS < 1 {
		errs = append(errs, fmt.Errorf("timeout_ms must be positive, got %d", s.TimeoutMS))
	}

	return errors.Join(errs...)
}

func (m *ModelConfig) Validate() error {
	if _, err := api.ParseModelID(m.Default); err != nil {
		return err
	}
	return nil
}

func (p *PickerConfig) Validate() error {
	if p.Dir == "" {
		return errors.New("dir must not be empty")
	}
	if len(p.Extensions) == 0 {
		return errors.New("extensions must not be empty")
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error, got %q", l.Level)
	}

	switch l.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", l.Format)
	}

	return nil
}

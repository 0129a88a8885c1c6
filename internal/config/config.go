package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Model   ModelConfig   `yaml:"model"`
	Picker  PickerConfig  `yaml:"picker"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// TimeoutMS bounds a whole backend round trip. Inference on a large
	// image can take a while, so the default is generous.
	TimeoutMS int `yaml:"timeout_ms"`
}

// ModelConfig selects which classifier is active when the client starts.
type ModelConfig struct {
	Default string `yaml:"default"`
}

// PickerConfig controls the TUI file picker. Extensions are an advisory
// filter only; the backend remains the authority on what it accepts.
type PickerConfig struct {
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives log output while the TUI owns the terminal. Empty means
	// logs are discarded in TUI mode.
	File string `yaml:"file"`
}

// BaseURL is the backend base URL derived from host and port.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutMS) * time.Millisecond
}

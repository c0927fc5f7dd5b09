package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Dqrshan/discord-interactions/pkg/components"
	"github.com/Dqrshan/discord-interactions/pkg/logger"
)

// Config is the CLI configuration: validation limits and logging.
type Config struct {
	Limits LimitsConfig `json:"limits" yaml:"limits"`
	Log    LogConfig    `json:"log"    yaml:"log"`
}

// LimitsConfig mirrors components.Limits. Discord revises these from time
// to time, so they are configuration rather than constants. Zero disables a
// check.
type LimitsConfig struct {
	MessageRows          int `env:"DISCORD_INTERACTIONS_LIMITS_MESSAGE_ROWS"          json:"message_rows"          yaml:"message_rows"`
	RowWidth             int `env:"DISCORD_INTERACTIONS_LIMITS_ROW_WIDTH"             json:"row_width"             yaml:"row_width"`
	CustomID             int `env:"DISCORD_INTERACTIONS_LIMITS_CUSTOM_ID"             json:"custom_id"             yaml:"custom_id"`
	ButtonLabel          int `env:"DISCORD_INTERACTIONS_LIMITS_BUTTON_LABEL"          json:"button_label"          yaml:"button_label"`
	ButtonURL            int `env:"DISCORD_INTERACTIONS_LIMITS_BUTTON_URL"            json:"button_url"            yaml:"button_url"`
	SelectPlaceholder    int `env:"DISCORD_INTERACTIONS_LIMITS_SELECT_PLACEHOLDER"    json:"select_placeholder"    yaml:"select_placeholder"`
	SelectOptions        int `env:"DISCORD_INTERACTIONS_LIMITS_SELECT_OPTIONS"        json:"select_options"        yaml:"select_options"`
	SelectValues         int `env:"DISCORD_INTERACTIONS_LIMITS_SELECT_VALUES"         json:"select_values"         yaml:"select_values"`
	OptionLabel          int `env:"DISCORD_INTERACTIONS_LIMITS_OPTION_LABEL"          json:"option_label"          yaml:"option_label"`
	OptionValue          int `env:"DISCORD_INTERACTIONS_LIMITS_OPTION_VALUE"          json:"option_value"          yaml:"option_value"`
	OptionDescription    int `env:"DISCORD_INTERACTIONS_LIMITS_OPTION_DESCRIPTION"    json:"option_description"    yaml:"option_description"`
	TextInputLabel       int `env:"DISCORD_INTERACTIONS_LIMITS_TEXT_INPUT_LABEL"      json:"text_input_label"      yaml:"text_input_label"`
	TextInputLength      int `env:"DISCORD_INTERACTIONS_LIMITS_TEXT_INPUT_LENGTH"     json:"text_input_length"     yaml:"text_input_length"`
	TextInputPlaceholder int `env:"DISCORD_INTERACTIONS_LIMITS_TEXT_INPUT_PLACEHOLDER" json:"text_input_placeholder" yaml:"text_input_placeholder"`
}

type LogConfig struct {
	Level string `env:"DISCORD_INTERACTIONS_LOG_LEVEL" json:"level" yaml:"level"`
}

func DefaultConfig() *Config {
	l := components.DefaultLimits()
	return &Config{
		Limits: LimitsConfig{
			MessageRows:          l.MessageRows,
			RowWidth:             l.RowWidth,
			CustomID:             l.CustomID,
			ButtonLabel:          l.ButtonLabel,
			ButtonURL:            l.ButtonURL,
			SelectPlaceholder:    l.SelectPlaceholder,
			SelectOptions:        l.SelectOptions,
			SelectValues:         l.SelectValues,
			OptionLabel:          l.OptionLabel,
			OptionValue:          l.OptionValue,
			OptionDescription:    l.OptionDescription,
			TextInputLabel:       l.TextInputLabel,
			TextInputLength:      l.TextInputLength,
			TextInputPlaceholder: l.TextInputPlaceholder,
		},
		Log: LogConfig{Level: "info"},
	}
}

// ComponentLimits converts the configured limits for the validation hook.
func (c *Config) ComponentLimits() components.Limits {
	l := c.Limits
	return components.Limits{
		MessageRows:          l.MessageRows,
		RowWidth:             l.RowWidth,
		CustomID:             l.CustomID,
		ButtonLabel:          l.ButtonLabel,
		ButtonURL:            l.ButtonURL,
		SelectPlaceholder:    l.SelectPlaceholder,
		SelectOptions:        l.SelectOptions,
		SelectValues:         l.SelectValues,
		OptionLabel:          l.OptionLabel,
		OptionValue:          l.OptionValue,
		OptionDescription:    l.OptionDescription,
		TextInputLabel:       l.TextInputLabel,
		TextInputLength:      l.TextInputLength,
		TextInputPlaceholder: l.TextInputPlaceholder,
	}
}

// LogLevel returns the configured level, defaulting to INFO when unset.
func (c *Config) LogLevel() (logger.LogLevel, error) {
	return logger.ParseLevel(c.Log.Level)
}

// Validate rejects negative limits and unknown log levels. Limits are checked
// in declaration order and the first failure is returned.
func (c *Config) Validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{"message_rows", c.Limits.MessageRows},
		{"row_width", c.Limits.RowWidth},
		{"custom_id", c.Limits.CustomID},
		{"button_label", c.Limits.ButtonLabel},
		{"button_url", c.Limits.ButtonURL},
		{"select_placeholder", c.Limits.SelectPlaceholder},
		{"select_options", c.Limits.SelectOptions},
		{"select_values", c.Limits.SelectValues},
		{"option_label", c.Limits.OptionLabel},
		{"option_value", c.Limits.OptionValue},
		{"option_description", c.Limits.OptionDescription},
		{"text_input_label", c.Limits.TextInputLabel},
		{"text_input_length", c.Limits.TextInputLength},
		{"text_input_placeholder", c.Limits.TextInputPlaceholder},
	}
	for _, l := range limits {
		if l.value < 0 {
			return fmt.Errorf("limits.%s: must not be negative, got %d", l.name, l.value)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadConfig reads the config at path over DefaultConfig, then applies
// environment overrides. A missing file is not an error. Files ending in
// .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if isYAML(path) {
			err = yaml.Unmarshal(data, cfg)
		} else {
			err = json.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		logger.DebugCF("config", "Config file loaded", map[string]any{"path": path})
	case os.IsNotExist(err):
		logger.DebugCF("config", "No config file, using defaults", map[string]any{"path": path})
	default:
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

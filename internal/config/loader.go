package config

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main() where early termination is desired.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// loadStruct populates struct fields from environment variables, recursing
// into nested sections. Fields without an env tag are skipped.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value := os.Getenv(envName)
		if value == "" {
			value = field.Tag.Get("default")
		}
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Storage.Path == "" {
		errs = append(errs, "STORE_PATH must not be empty")
	}

	if c.Export.CSVPath == "" {
		errs = append(errs, "EXPORT_CSV_PATH must not be empty")
	}
	if c.Export.CSVPath != "" && c.Export.CSVPath == c.Storage.Path {
		errs = append(errs, fmt.Sprintf("EXPORT_CSV_PATH (%q) must differ from STORE_PATH; the export would overwrite the roster", c.Export.CSVPath))
	}

	if c.Report.Path == "" {
		errs = append(errs, "REPORT_PATH must not be empty")
	}
	if !hexColorPattern.MatchString(c.Report.HeaderColor) {
		errs = append(errs, fmt.Sprintf("REPORT_HEADER_COLOR (%q) must be a six-digit hex RGB value", c.Report.HeaderColor))
	}

	if c.Roster.StartRoll < 1 {
		errs = append(errs, fmt.Sprintf("START_ROLL (%d) must be positive", c.Roster.StartRoll))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a string representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Storage: {Path: %q}, ", c.Storage.Path))
	b.WriteString(fmt.Sprintf("Export: {CSVPath: %q}, ", c.Export.CSVPath))
	b.WriteString(fmt.Sprintf("Report: {Path: %q, Title: %q, HeaderColor: %q}, ",
		c.Report.Path, c.Report.Title, c.Report.HeaderColor))
	b.WriteString(fmt.Sprintf("Roster: {StartRoll: %d}, ", c.Roster.StartRoll))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q, File: %q}",
		c.Logging.Level, c.Logging.Format, c.Logging.File))
	b.WriteString("}")
	return b.String()
}

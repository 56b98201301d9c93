// Package config provides centralized configuration management for the tool.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Storage StorageConfig
	Export  ExportConfig
	Report  ReportConfig
	Roster  RosterConfig
	Logging LoggingConfig
}

// StorageConfig holds roster file settings.
type StorageConfig struct {
	// Path is the roster CSV file (default: students.csv)
	Path string `env:"STORE_PATH" default:"students.csv"`
}

// ExportConfig holds CSV snapshot export settings.
type ExportConfig struct {
	// CSVPath is the export destination; must differ from the roster file
	// (default: students_export.csv)
	CSVPath string `env:"EXPORT_CSV_PATH" default:"students_export.csv"`
}

// ReportConfig holds PDF report settings.
type ReportConfig struct {
	// Path is the report destination (default: students_report.pdf)
	Path string `env:"REPORT_PATH" default:"students_report.pdf"`

	// Title is printed at the top of the report
	Title string `env:"REPORT_TITLE" default:"Student Management System - Report"`

	// HeaderColor is the hex RGB fill of the table header row (default: #4B8BBE)
	HeaderColor string `env:"REPORT_HEADER_COLOR" default:"#4B8BBE"`
}

// RosterConfig holds roll number assignment settings.
type RosterConfig struct {
	// StartRoll is the first roll number assigned to an empty roster
	// (default: 1001)
	StartRoll int `env:"START_ROLL" default:"1001"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	// The default keeps diagnostics out of the interactive session.
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`

	// File is an optional log destination; empty means stderr
	File string `env:"LOG_FILE"`
}

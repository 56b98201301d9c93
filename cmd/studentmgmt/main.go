package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Vanshika-gupta001/Student-management/internal/config"
	"github.com/Vanshika-gupta001/Student-management/internal/logging"
	"github.com/Vanshika-gupta001/Student-management/internal/report"
	"github.com/Vanshika-gupta001/Student-management/internal/roster"
	"github.com/Vanshika-gupta001/Student-management/internal/store"
	"github.com/Vanshika-gupta001/Student-management/internal/ui"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars).
	// The result is logged after logging is configured so nothing prints
	// ahead of the shell.
	dotenvErr := godotenv.Overload()

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	if err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File); err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}

	if dotenvErr != nil {
		slog.Debug("no .env file found, using environment variables")
	} else {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}
	slog.Debug("configuration loaded", "config", cfg)

	// Create the roster file up front so the first operation starts from a
	// valid store.
	st := store.New(cfg.Storage.Path)
	if err := st.EnsureInitialized(); err != nil {
		slog.Error("failed to initialize roster file", "error", err)
		os.Exit(1)
	}

	writer, err := report.NewPDF(report.Options{
		Path:        cfg.Report.Path,
		Title:       cfg.Report.Title,
		HeaderColor: cfg.Report.HeaderColor,
	})
	if err != nil {
		slog.Error("failed to configure report writer", "error", err)
		os.Exit(1)
	}

	svc := roster.NewService(st, cfg, writer)

	slog.Debug("shell starting", "store", st.Path(), "report", writer.Path())
	if _, err := tea.NewProgram(ui.New(svc)).Run(); err != nil {
		slog.Error("shell stopped", "error", err)
		os.Exit(1)
	}
}

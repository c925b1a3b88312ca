// Command tempmatrix renders an interactive year-by-month temperature matrix
// from a decade of daily weather records.
//
// Configuration comes from the environment (DATA_FILE, YEAR_START, YEAR_END,
// LOG_LEVEL, LOG_FORMAT); a positional argument overrides DATA_FILE:
//
//	tempmatrix [daily_weather.csv]
package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/couchcryptid/temp-matrix/internal/config"
	"github.com/couchcryptid/temp-matrix/internal/observability"
	"github.com/couchcryptid/temp-matrix/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.DataFile = os.Args[1]
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	m := tui.NewModel(cfg, logger, metrics)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("ui error", "error", err)
		os.Exit(1)
	}
}

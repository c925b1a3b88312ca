// Package tui renders the temperature matrix as an interactive terminal
// program. All grid logic lives in internal/view; this package owns layout,
// styles, and key handling only.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/couchcryptid/temp-matrix/internal/colorscale"
	"github.com/couchcryptid/temp-matrix/internal/config"
	"github.com/couchcryptid/temp-matrix/internal/dataset"
	"github.com/couchcryptid/temp-matrix/internal/domain"
	"github.com/couchcryptid/temp-matrix/internal/observability"
	"github.com/couchcryptid/temp-matrix/internal/view"
)

// projectionCacheSize comfortably covers a decade grid in both modes.
const projectionCacheSize = 256

// cellSource is the projection surface the renderer consumes.
type cellSource interface {
	Cell(mode view.Mode, key domain.MonthKey) view.CellProjection
	Scale() colorscale.Diverging
}

type loadedMsg struct {
	data *dataset.Dataset
}

type loadFailedMsg struct {
	err error
}

// Model drives the interactive matrix. Until the one-time load resolves it
// shows a placeholder and reads none of the lookup structures; after that the
// dataset is immutable and every handler runs to completion, so the grid is
// never observed partially updated.
type Model struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	loader  *dataset.Loader

	data    *dataset.Dataset
	proj    cellSource
	nav     *view.GridNav
	mode    view.Mode
	loadErr error
}

// NewModel creates the initial (loading) model.
func NewModel(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) Model {
	return Model{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		loader:  dataset.NewLoader(logger, metrics),
		mode:    view.ShowMax,
	}
}

// Init kicks off the dataset load, the only asynchronous operation in the
// program.
func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	d, err := m.loader.Load(m.cfg.DataFile, m.cfg.YearStart, m.cfg.YearEnd)
	if err != nil {
		return loadFailedMsg{err: err}
	}
	return loadedMsg{data: d}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.data = msg.data
		m.proj = view.NewCachedProjector(view.NewProjector(msg.data), projectionCacheSize)
		m.nav = view.NewGridNav(msg.data.Years())
		return m, nil

	case loadFailedMsg:
		m.loadErr = msg.err
		m.logger.Error("dataset load failed", "error", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	// Before the load resolves (or after it fails) the grid does not exist;
	// only quit keys are meaningful.
	if m.data == nil {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.nav.Move(view.DirUp)
	case "down", "j":
		m.nav.Move(view.DirDown)
	case "left", "h":
		m.nav.Move(view.DirLeft)
	case "right", "l":
		m.nav.Move(view.DirRight)
	case "enter", " ", "t":
		m.mode = m.mode.Toggle()
		m.metrics.ModeToggles.Inc()
	}
	return m, nil
}

// Package ui provides the Bubbletea terminal user interface for deadair
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linuxmatters/deadair/internal/config"
	"github.com/linuxmatters/deadair/internal/scanner"
)

// maxRecent bounds the rolling list of notable outcomes kept on screen.
const maxRecent = 6

// Model is the Bubbletea model for the scan progress UI. The scan itself
// runs in a separate goroutine and feeds the model through p.Send; the
// model only tallies and renders.
type Model struct {
	// Run parameters shown in the header
	Root      string
	Mode      config.Mode
	Interval  int
	Samples   int
	Threshold float64

	// Queue state
	TotalFiles  int
	Scanned     int
	Silent      int
	Kept        int
	Errors      int
	CurrentPath string

	// Rolling list of the latest notable outcomes (silent and error);
	// kept files are counted but not listed.
	Recent []scanner.Outcome

	// Global state
	StartTime time.Time
	Done      bool

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates the UI model for a scan over totalFiles files.
func NewModel(cfg config.Config, totalFiles int) Model {
	return Model{
		Root:       cfg.Root,
		Mode:       cfg.Mode,
		Interval:   cfg.IntervalSeconds,
		Samples:    cfg.NumSamplesPerFile,
		Threshold:  cfg.SilenceThreshold,
		TotalFiles: totalFiles,
		StartTime:  time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case FileStartMsg:
		m.CurrentPath = msg.Path

	case FileDoneMsg:
		m.Scanned++
		switch msg.Outcome.Decision {
		case scanner.DecisionSilent:
			m.Silent++
		case scanner.DecisionError:
			m.Errors++
		default:
			m.Kept++
		}
		if msg.Outcome.Reportable() {
			m.Recent = append(m.Recent, msg.Outcome)
			if len(m.Recent) > maxRecent {
				m.Recent = m.Recent[len(m.Recent)-maxRecent:]
			}
		}

	case AllDoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Width == 0 {
		return "Initializing...\n"
	}
	return renderScanView(m)
}

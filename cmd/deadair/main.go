package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/linuxmatters/deadair/internal/cli"
	"github.com/linuxmatters/deadair/internal/config"
	"github.com/linuxmatters/deadair/internal/logging"
	"github.com/linuxmatters/deadair/internal/scanner"
	"github.com/linuxmatters/deadair/internal/ui"
	"github.com/linuxmatters/deadair/internal/walker"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version   bool            `short:"v" help:"Show version information"`
	Config    kong.ConfigFlag `short:"c" help:"Path to TOML config file (optional)"`
	Mode      string          `short:"m" default:"audit" help:"What to do with silent files: audit records them, delete removes them"`
	Interval  int             `default:"7" help:"Chunk length in seconds sampled at each probe position"`
	Samples   int             `default:"16" help:"Number of chunk positions probed per file"`
	Threshold float64         `default:"0.0001" help:"Peak amplitude at or below which a chunk counts as silent"`
	MinSize   int64           `default:"0" help:"Keep files smaller than this many bytes without opening them; 0 disables"`
	Report    string          `short:"r" default:"silent-wav-audit.csv" help:"CSV report destination"`
	Logs      bool            `help:"Write a diagnostic log to deadair-debug.log"`
	Root      string          `arg:"" name:"root" optional:"" help:"Directory tree to audit"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("deadair"),
		kong.Description("Silent WAV auditor"),
		kong.UsageOnError(),
		kong.Configuration(config.TOML),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if cliArgs.Root == "" {
		cli.PrintError("No root directory specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	cfg := config.Config{
		Root:              cliArgs.Root,
		Mode:              config.Mode(cliArgs.Mode),
		IntervalSeconds:   cliArgs.Interval,
		NumSamplesPerFile: cliArgs.Samples,
		SilenceThreshold:  cliArgs.Threshold,
		MinSizeBytes:      cliArgs.MinSize,
		ReportPath:        cliArgs.Report,
		DebugLog:          cliArgs.Logs,
	}

	// Configuration failures are the only fatal errors; everything after
	// this point is folded into per-file outcomes.
	if err := cfg.Validate(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	// Route diagnostics to a debug log file when requested; the TUI owns
	// the terminal while the scan runs.
	logrus.SetOutput(io.Discard)
	if cfg.DebugLog {
		if debugLog, err := os.Create("deadair-debug.log"); err == nil {
			defer debugLog.Close()
			logrus.SetOutput(debugLog)
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	// Pre-enumerate so the progress bar has a true total
	files, err := walker.FindWAVFiles(cfg.Root)
	if err != nil {
		cli.PrintError(fmt.Sprintf("Failed to enumerate %s: %v", cfg.Root, err))
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"root":  cfg.Root,
		"mode":  cfg.Mode,
		"files": len(files),
	}).Info("starting scan")

	// Create the Bubbletea UI model
	model := ui.NewModel(cfg, len(files))
	p := tea.NewProgram(model, tea.WithAltScreen())

	type runResult struct {
		summary scanner.Summary
		rows    []scanner.Outcome
	}
	done := make(chan runResult, 1)

	// Run the scan in the background, feeding progress into the UI
	go func() {
		pipeline := scanner.NewPipeline(cfg)
		pipeline.OnStart = func(index int, path string) {
			p.Send(ui.FileStartMsg{Index: index, Path: path})
		}
		pipeline.OnResult = func(index int, outcome scanner.Outcome) {
			p.Send(ui.FileDoneMsg{Index: index, Outcome: outcome})
		}

		summary, rows := pipeline.Run(files)
		done <- runResult{summary: summary, rows: rows}
		p.Send(ui.AllDoneMsg{})
	}()

	// Run the program
	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}

	// The report is written even when the UI was quit early; the scan
	// finishes headless and whatever it found is flushed.
	result := <-done
	if err := logging.WriteReport(cfg.ReportPath, result.rows); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	logging.RenderSummary(os.Stdout, cfg, result.summary)
}

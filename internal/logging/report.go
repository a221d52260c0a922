// Package logging persists the audit report and renders the run summary.
package logging

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/linuxmatters/deadair/internal/scanner"
)

// reportHeader is the CSV schema: one row per silent candidate or error.
var reportHeader = []string{
	"path",
	"decision",
	"detail",
	"size_bytes",
	"duration_sec",
	"samplerate",
	"channels",
	"interval_seconds",
	"num_samples_used",
	"threshold",
	"max_abs_seen",
}

// WriteReport writes the report rows to a CSV file at path, creating
// parent directories as needed. The file is rewritten from scratch on
// every run.
func WriteReport(path string, rows []scanner.Outcome) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(reportRecord(row)); err != nil {
			return fmt.Errorf("failed to write report row for %s: %w", row.Path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return f.Close()
}

// reportRecord formats one outcome as a CSV record. Durations get three
// decimal places; threshold and peak use six significant digits so very
// small amplitudes stay readable.
func reportRecord(o scanner.Outcome) []string {
	return []string{
		o.Path,
		string(o.Decision),
		o.Detail,
		strconv.FormatInt(o.SizeBytes, 10),
		fmt.Sprintf("%.3f", o.DurationSec),
		strconv.Itoa(o.SampleRate),
		strconv.Itoa(o.Channels),
		strconv.Itoa(o.IntervalSeconds),
		strconv.Itoa(o.NumSamplesUsed),
		fmt.Sprintf("%.6g", o.Threshold),
		fmt.Sprintf("%.6g", o.MaxAbsSeen),
	}
}

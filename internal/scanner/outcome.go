package scanner

import "fmt"

// Decision is the three-way verdict on a scanned file.
type Decision string

const (
	// DecisionSilent marks a file whose probed chunks all stayed at or
	// below the threshold; it is a candidate for deletion.
	DecisionSilent Decision = "SILENT"
	// DecisionKeep marks a file with at least one chunk above the
	// threshold, or one that was skipped by the size gate.
	DecisionKeep Decision = "KEEP"
	// DecisionError marks a file that could not be classified.
	DecisionError Decision = "ERROR"
)

// Outcome records the classification of one file. Values are constructed
// once and never mutated; derived rows (such as delete failures) are built
// by copying with overrides.
type Outcome struct {
	Path     string
	Decision Decision
	Detail   string // which chunk tripped the threshold, which error occurred, etc.

	// File and audio metadata captured at scan time. Zeroed on errors
	// where the information never became available.
	SizeBytes   int64
	DurationSec float64
	SampleRate  int
	Channels    int

	// The scan parameters actually applied. NumSamplesUsed is the number
	// of planned chunk positions after deduplication, which can be fewer
	// than requested on short files.
	IntervalSeconds int
	NumSamplesUsed  int
	Threshold       float64

	// Loudest peak observed across probed chunks. Zero when the file was
	// size-gated or errored before any chunk was read.
	MaxAbsSeen float64
}

// AsDeleteFailure derives the synthetic error row recorded when a silent
// file could not be removed. The original classification's metadata is
// preserved so the audit trail stays complete.
func (o Outcome) AsDeleteFailure(err error) Outcome {
	failed := o
	failed.Decision = DecisionError
	failed.Detail = fmt.Sprintf("delete failed: %v", err)
	return failed
}

// Reportable reports whether this outcome belongs in the CSV report.
// Kept files are the common case and are not persisted individually; only
// candidates and anomalies are.
func (o Outcome) Reportable() bool {
	return o.Decision == DecisionSilent || o.Decision == DecisionError
}

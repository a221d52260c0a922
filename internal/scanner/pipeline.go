package scanner

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/linuxmatters/deadair/internal/config"
)

// nearThresholdFactor bounds the "near miss" band above the threshold.
// Kept files whose loudest peak lands inside it often carry nothing but
// mains hum or electronic noise, which is worth flagging in the summary.
const nearThresholdFactor = 10.0

// Summary aggregates one run. It is owned and mutated only by the
// pipeline, then handed out once the run completes.
type Summary struct {
	Scanned int
	Silent  int
	Deleted int
	Errors  int

	// BytesFlaggable is the total size of silent candidates;
	// BytesReclaimed the size of files actually removed (delete mode).
	BytesFlaggable int64
	BytesReclaimed int64

	// NearThresholdKeeps counts kept files whose peak stayed within
	// nearThresholdFactor of the threshold.
	NearThresholdKeeps int
}

// Pipeline runs the classifier over a list of files, applies the
// configured mode and accumulates the run summary plus report rows.
// Files are processed one at a time; a failed file never aborts the run.
type Pipeline struct {
	classifier *Classifier
	mode       config.Mode

	// remove is swapped out in tests to exercise delete failures.
	remove func(path string) error

	// OnStart and OnResult, when set, observe each file as it is scanned.
	// They are invoked sequentially from Run's goroutine.
	OnStart  func(index int, path string)
	OnResult func(index int, outcome Outcome)
}

// NewPipeline builds a pipeline for the given run configuration.
func NewPipeline(cfg config.Config) *Pipeline {
	return &Pipeline{
		classifier: NewClassifier(cfg),
		mode:       cfg.Mode,
		remove:     os.Remove,
	}
}

// Run scans every file in order and returns the summary plus the rows that
// belong in the report (silent candidates and errors; kept files are not
// persisted individually). In delete mode, silent files are removed as
// they are found; a failed delete is recorded as a synthetic error row on
// top of the original classification.
func (p *Pipeline) Run(files []string) (Summary, []Outcome) {
	var summary Summary
	var rows []Outcome

	for i, path := range files {
		if p.OnStart != nil {
			p.OnStart(i, path)
		}

		outcome := p.classifier.Scan(path)
		summary.Scanned++

		switch outcome.Decision {
		case DecisionSilent:
			summary.Silent++
			summary.BytesFlaggable += outcome.SizeBytes
			rows = append(rows, outcome)

			if p.mode == config.ModeDelete {
				if err := p.remove(outcome.Path); err != nil {
					logrus.WithField("path", outcome.Path).WithError(err).Warn("delete failed")
					summary.Errors++
					rows = append(rows, outcome.AsDeleteFailure(err))
				} else {
					logrus.WithField("path", outcome.Path).Info("deleted silent file")
					summary.Deleted++
					summary.BytesReclaimed += outcome.SizeBytes
				}
			}

		case DecisionError:
			summary.Errors++
			rows = append(rows, outcome)

		default:
			// KEEP: the expected common case, counted but not reported.
			if outcome.MaxAbsSeen > outcome.Threshold &&
				outcome.MaxAbsSeen <= outcome.Threshold*nearThresholdFactor {
				summary.NearThresholdKeeps++
			}
		}

		if p.OnResult != nil {
			p.OnResult(i, outcome)
		}
	}

	return summary, rows
}

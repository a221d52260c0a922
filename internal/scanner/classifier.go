package scanner

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/linuxmatters/deadair/internal/audio"
	"github.com/linuxmatters/deadair/internal/config"
)

// OpenFunc opens a file for windowed reading. Tests substitute this to
// count opens and serve synthetic audio.
type OpenFunc func(path string) (audio.WindowReader, *audio.Metadata, error)

// Classifier decides whether a single file is silent by probing evenly
// spaced chunks and comparing each chunk's peak amplitude against the
// threshold.
type Classifier struct {
	interval int
	samples  int
	thresh   float64
	minSize  int64

	open OpenFunc
}

// NewClassifier builds a classifier from the run configuration, reading
// real files through the audio package.
func NewClassifier(cfg config.Config) *Classifier {
	return &Classifier{
		interval: cfg.IntervalSeconds,
		samples:  cfg.NumSamplesPerFile,
		thresh:   cfg.SilenceThreshold,
		minSize:  cfg.MinSizeBytes,
		open: func(path string) (audio.WindowReader, *audio.Metadata, error) {
			return audio.Open(path)
		},
	}
}

// Scan classifies one file. It never fails: every error on the way (stat,
// open, decode, read) is folded into an ERROR outcome, so callers need no
// error handling of their own.
func (c *Classifier) Scan(path string) Outcome {
	out := Outcome{
		Path:            path,
		IntervalSeconds: c.interval,
		Threshold:       c.thresh,
	}

	info, err := os.Stat(path)
	if err != nil {
		return c.failure(out, "stat failed", err)
	}
	out.SizeBytes = info.Size()

	// Size gate: files below the floor are kept without ever being opened.
	if c.minSize > 0 && out.SizeBytes < c.minSize {
		out.Decision = DecisionKeep
		out.Detail = fmt.Sprintf("below size gate (%d < %d bytes)", out.SizeBytes, c.minSize)
		return out
	}

	reader, meta, err := c.open(path)
	if err != nil {
		return c.failure(out, "open failed", err)
	}
	defer reader.Close()

	out.SampleRate = meta.SampleRate
	out.Channels = meta.Channels
	out.DurationSec = meta.Duration

	offsets, framesPerChunk := PlanWindows(meta.TotalFrames, meta.SampleRate, c.interval, c.samples)
	if len(offsets) == 0 {
		// Distinct from decode failures: the header parsed but the audio
		// is empty or its metadata degenerate. Not treated as silence.
		out.Decision = DecisionError
		out.Detail = "could not compute sample positions (invalid WAV metadata or empty audio)"
		return out
	}

	logrus.WithFields(logrus.Fields{
		"path":   path,
		"chunks": len(offsets),
		"frames": framesPerChunk,
	}).Debug("scanning planned chunks")

	maxAbs := 0.0
	for _, offset := range offsets {
		samples, err := reader.ReadWindow(offset, framesPerChunk)
		if err != nil {
			return c.failure(out, "read failed", err)
		}
		// Empty reads near the end of stream are skipped, not errors.
		if len(samples) == 0 {
			continue
		}

		peak := peakAbs(samples)
		if peak > maxAbs {
			maxAbs = peak
		}

		// Strict comparison: a peak exactly at the threshold still counts
		// as silent. One loud chunk disqualifies the file immediately;
		// later chunks are never read.
		if peak > c.thresh {
			out.Decision = DecisionKeep
			out.Detail = fmt.Sprintf("non-silent chunk found (peak=%.6g > threshold)", peak)
			out.NumSamplesUsed = len(offsets)
			out.MaxAbsSeen = maxAbs
			return out
		}
	}

	out.Decision = DecisionSilent
	out.Detail = "all sampled chunks were at or below threshold"
	out.NumSamplesUsed = len(offsets)
	out.MaxAbsSeen = maxAbs
	return out
}

// failure converts an error into an ERROR outcome. Audio metadata is
// zeroed: whatever was read before the failure carries no meaningful
// signal about the file's content.
func (c *Classifier) failure(out Outcome, category string, err error) Outcome {
	logrus.WithFields(logrus.Fields{
		"path":  out.Path,
		"cause": category,
	}).WithError(err).Debug("scan failed")

	return Outcome{
		Path:            out.Path,
		Decision:        DecisionError,
		Detail:          fmt.Sprintf("%s: %v", category, err),
		IntervalSeconds: c.interval,
		Threshold:       c.thresh,
	}
}

// peakAbs returns the largest absolute sample value in a chunk. Channels
// are not separated; any channel can disqualify the file.
func peakAbs(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

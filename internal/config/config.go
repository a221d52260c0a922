// Package config holds the run configuration for a silence audit.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// Mode selects what the scan does with silent files.
type Mode string

const (
	// ModeAudit records silent candidates without touching them.
	ModeAudit Mode = "audit"
	// ModeDelete removes files classified as silent.
	ModeDelete Mode = "delete"
)

// Config is the full set of parameters for one scan run. It is built once
// by the CLI layer and passed into the pipeline; nothing mutates it after
// validation.
type Config struct {
	Root              string  // directory tree to scan
	Mode              Mode    // audit or delete
	IntervalSeconds   int     // chunk length sampled at each position
	NumSamplesPerFile int     // chunk positions probed per file
	SilenceThreshold  float64 // peak amplitude at/below which a chunk is silent
	MinSizeBytes      int64   // files below this size are kept unopened; 0 disables
	ReportPath        string  // CSV report destination
	DebugLog          bool    // write diagnostic log to deadair-debug.log
}

// Default returns the stock configuration: a non-destructive audit sampling
// sixteen 7-second chunks per file against a 1e-4 peak threshold. The
// threshold deliberately sits above digital zero so dither, DC offset and
// faint electronic noise do not block deletion of effectively-silent files.
func Default() Config {
	return Config{
		Mode:              ModeAudit,
		IntervalSeconds:   7,
		NumSamplesPerFile: 16,
		SilenceThreshold:  1e-4,
		MinSizeBytes:      0,
		ReportPath:        "silent-wav-audit.csv",
	}
}

// Validate checks the configuration before any file is touched. A failure
// here is the only error class that aborts the run.
func (c Config) Validate() error {
	if c.Mode != ModeAudit && c.Mode != ModeDelete {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeAudit, ModeDelete, c.Mode)
	}
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("root is not a readable directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", c.Root)
	}
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("interval must be positive, got %d", c.IntervalSeconds)
	}
	if c.NumSamplesPerFile < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.NumSamplesPerFile)
	}
	if c.SilenceThreshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %g", c.SilenceThreshold)
	}
	if c.MinSizeBytes < 0 {
		return fmt.Errorf("min-size must not be negative, got %d", c.MinSizeBytes)
	}
	if c.ReportPath == "" {
		return fmt.Errorf("report path must not be empty")
	}
	return nil
}

// TOML is a kong configuration loader that resolves flag values from a
// TOML file, so `--config scan.toml` can carry the scan parameters. Keys
// match flag names with dashes replaced by underscores (e.g. min_size).
func TOML(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	var f kong.ResolverFunc = func(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		name := strings.ReplaceAll(flag.Name, "-", "_")
		value, ok := values[name]
		if !ok {
			return nil, nil
		}
		return value, nil
	}
	return f, nil
}

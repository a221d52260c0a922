package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	cfg := Default()
	cfg.Root = t.TempDir()
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != ModeAudit {
		t.Errorf("Mode = %s, want audit", cfg.Mode)
	}
	if cfg.IntervalSeconds != 7 || cfg.NumSamplesPerFile != 16 {
		t.Errorf("interval/samples = %d/%d, want 7/16", cfg.IntervalSeconds, cfg.NumSamplesPerFile)
	}
	if cfg.SilenceThreshold != 1e-4 {
		t.Errorf("SilenceThreshold = %g, want 1e-4", cfg.SilenceThreshold)
	}
	if cfg.MinSizeBytes != 0 {
		t.Errorf("MinSizeBytes = %d, want 0 (disabled)", cfg.MinSizeBytes)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config, *testing.T)
		wantErr string
	}{
		{"valid_audit", func(c *Config, t *testing.T) {}, ""},
		{"valid_delete", func(c *Config, t *testing.T) { c.Mode = ModeDelete }, ""},
		{"bad_mode", func(c *Config, t *testing.T) { c.Mode = "DESTROY" }, "mode must be"},
		{"missing_root", func(c *Config, t *testing.T) { c.Root = filepath.Join(c.Root, "missing") }, "root"},
		{"root_is_file", func(c *Config, t *testing.T) {
			c.Root = writeFile(t, c.Root, "file.wav")
		}, "not a directory"},
		{"zero_interval", func(c *Config, t *testing.T) { c.IntervalSeconds = 0 }, "interval"},
		{"zero_samples", func(c *Config, t *testing.T) { c.NumSamplesPerFile = 0 }, "samples"},
		{"negative_threshold", func(c *Config, t *testing.T) { c.SilenceThreshold = -0.1 }, "threshold"},
		{"negative_min_size", func(c *Config, t *testing.T) { c.MinSizeBytes = -1 }, "min-size"},
		{"empty_report", func(c *Config, t *testing.T) { c.ReportPath = "" }, "report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg, t)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTOMLResolver(t *testing.T) {
	doc := `
mode = "delete"
threshold = 0.001
min_size = 1024
samples = 8
`
	resolver, err := TOML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("TOML failed: %v", err)
	}

	tests := []struct {
		flag string
		want interface{}
	}{
		{"mode", "delete"},
		{"threshold", 0.001},
		{"min-size", int64(1024)}, // dashes map to underscores
		{"samples", int64(8)},
		{"interval", nil}, // absent keys resolve to nothing
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := &kong.Flag{Value: &kong.Value{Name: tt.flag}}
			got, err := resolver.Resolve(nil, nil, f)
			if err != nil {
				t.Fatalf("Resolve(%s) failed: %v", tt.flag, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%s) = %v (%T), want %v", tt.flag, got, got, tt.want)
			}
		})
	}
}

func TestTOMLRejectsBadDocument(t *testing.T) {
	if _, err := TOML(strings.NewReader("mode = [unclosed")); err == nil {
		t.Fatal("TOML accepted an invalid document")
	}
}

package scanner

import (
	"reflect"
	"testing"
)

func TestPlanWindowsDegenerateInputs(t *testing.T) {
	tests := []struct {
		name        string
		totalFrames int64
		sampleRate  int
		interval    int
		count       int
	}{
		{"zero_frames", 0, 48000, 7, 16},
		{"negative_frames", -1, 48000, 7, 16},
		{"zero_sample_rate", 1000000, 0, 7, 16},
		{"negative_sample_rate", 1000000, -48000, 7, 16},
		{"zero_interval", 1000000, 48000, 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offsets, _ := PlanWindows(tt.totalFrames, tt.sampleRate, tt.interval, tt.count)
			if len(offsets) != 0 {
				t.Errorf("PlanWindows(%d, %d, %d, %d) = %v, want empty",
					tt.totalFrames, tt.sampleRate, tt.interval, tt.count, offsets)
			}
		})
	}
}

func TestPlanWindowsShortFile(t *testing.T) {
	// A file shorter than one chunk is probed exactly once at frame 0,
	// regardless of the requested sample count.
	for _, count := range []int{1, 4, 16, 1000} {
		offsets, framesPerChunk := PlanWindows(10000, 48000, 7, count)
		if framesPerChunk != 48000*7 {
			t.Fatalf("framesPerChunk = %d, want %d", framesPerChunk, 48000*7)
		}
		if len(offsets) != 1 || offsets[0] != 0 {
			t.Errorf("count=%d: offsets = %v, want [0]", count, offsets)
		}
	}

	// Boundary: totalFrames exactly one chunk still counts as short.
	offsets, _ := PlanWindows(48000*7, 48000, 7, 16)
	if len(offsets) != 1 || offsets[0] != 0 {
		t.Errorf("exact-length file: offsets = %v, want [0]", offsets)
	}
}

func TestPlanWindowsCoverage(t *testing.T) {
	// 2 hours at 48kHz with 16 probes of 7s each
	totalFrames := int64(2 * 3600 * 48000)
	offsets, framesPerChunk := PlanWindows(totalFrames, 48000, 7, 16)

	if len(offsets) != 16 {
		t.Fatalf("len(offsets) = %d, want 16", len(offsets))
	}
	if offsets[0] != 0 {
		t.Errorf("first offset = %d, want 0", offsets[0])
	}
	maxStart := totalFrames - int64(framesPerChunk)
	if offsets[len(offsets)-1] != maxStart {
		t.Errorf("last offset = %d, want %d", offsets[len(offsets)-1], maxStart)
	}

	// Strictly ascending, every chunk read stays inside the file
	for i, off := range offsets {
		if i > 0 && off <= offsets[i-1] {
			t.Errorf("offsets not strictly ascending at %d: %d <= %d", i, off, offsets[i-1])
		}
		if off+int64(framesPerChunk) > totalFrames {
			t.Errorf("offset %d overruns the file", off)
		}
	}
}

func TestPlanWindowsDeduplicates(t *testing.T) {
	// A file barely longer than one chunk with many requested probes
	// rounds neighbouring starts onto the same frames.
	framesPerChunk := int64(48000 * 7)
	totalFrames := framesPerChunk + 5 // maxStart = 5

	offsets, _ := PlanWindows(totalFrames, 48000, 7, 16)
	if len(offsets) >= 16 {
		t.Fatalf("expected deduplication, got %d offsets", len(offsets))
	}
	seen := map[int64]bool{}
	for _, off := range offsets {
		if seen[off] {
			t.Errorf("duplicate offset %d", off)
		}
		seen[off] = true
	}
}

func TestPlanWindowsDeterministic(t *testing.T) {
	a, _ := PlanWindows(987654321, 44100, 7, 16)
	b, _ := PlanWindows(987654321, 44100, 7, 16)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different plans: %v vs %v", a, b)
	}
}

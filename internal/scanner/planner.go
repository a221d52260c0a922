// Package scanner decides whether whole WAV files are silent from a
// handful of bounded window reads, and drives that decision across a file
// tree.
package scanner

// PlanWindows computes where to probe inside a file. It returns the frame
// offsets of each chunk to read, ascending and deduplicated, plus the chunk
// length in frames. Identical inputs always produce identical offsets so
// repeated audits are reproducible.
//
// An empty offset slice signals degenerate metadata (no frames, no sample
// rate); the caller classifies that as an error rather than silence.
func PlanWindows(totalFrames int64, sampleRate, intervalSeconds, desiredCount int) ([]int64, int) {
	framesPerChunk := sampleRate * intervalSeconds
	if sampleRate <= 0 || totalFrames <= 0 || framesPerChunk <= 0 {
		return nil, framesPerChunk
	}

	// A file shorter than one chunk gets a single probe at the start; the
	// read truncates to whatever exists. Short files are deliberately not
	// probed more than once even when desiredCount is high, so audit
	// results stay comparable with earlier runs.
	if totalFrames <= int64(framesPerChunk) {
		return []int64{0}, framesPerChunk
	}

	// Largest start that still allows a full chunk read.
	maxStart := totalFrames - int64(framesPerChunk)

	if desiredCount < 1 {
		desiredCount = 1
	}

	// Evenly spaced starts from 0 to maxStart inclusive, truncated to
	// integer frame indices. Short files with high counts can round
	// neighbouring starts onto the same frame; collapse those.
	offsets := make([]int64, 0, desiredCount)
	last := int64(-1)
	for i := 0; i < desiredCount; i++ {
		var off int64
		if desiredCount > 1 {
			off = int64(float64(i) * float64(maxStart) / float64(desiredCount-1))
		}
		if off != last {
			offsets = append(offsets, off)
			last = off
		}
	}
	return offsets, framesPerChunk
}

package scanner

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TestWAVOptions configures the synthetic audio to generate
type TestWAVOptions struct {
	DurationSecs float64 // Total duration in seconds
	SampleRate   int     // Sample rate (default: 44100)
	Channels     int     // Channel count (default: 1)
	Amplitude    float64 // Constant absolute amplitude for every sample (linear, 0..1)
	Burst        struct {
		Start    float64 // Start time of a louder burst in seconds
		Duration float64 // Duration of the burst in seconds
		Level    float64 // Burst amplitude (linear, 0..1)
	}
}

// generateTestWAV creates a synthetic 16-bit WAV file for testing in the
// test's temp dir. The audio is a constant-amplitude signal, optionally
// with a louder burst somewhere inside, which is all the silence scanner
// cares about.
func generateTestWAV(t *testing.T, opts TestWAVOptions) string {
	t.Helper()

	if opts.SampleRate == 0 {
		opts.SampleRate = 44100
	}
	if opts.Channels == 0 {
		opts.Channels = 1
	}
	if opts.DurationSecs == 0 {
		opts.DurationSecs = 5.0
	}

	totalFrames := int(opts.DurationSecs * float64(opts.SampleRate))
	samples := make([]int16, totalFrames*opts.Channels)

	burstStart := int(opts.Burst.Start * float64(opts.SampleRate))
	burstEnd := int((opts.Burst.Start + opts.Burst.Duration) * float64(opts.SampleRate))

	maxInt16 := float64(math.MaxInt16)
	for frame := 0; frame < totalFrames; frame++ {
		amp := opts.Amplitude
		if opts.Burst.Duration > 0 && frame >= burstStart && frame < burstEnd {
			amp = opts.Burst.Level
		}
		// Alternate sign so the signal is not a DC offset
		if frame%2 == 1 {
			amp = -amp
		}
		for ch := 0; ch < opts.Channels; ch++ {
			samples[frame*opts.Channels+ch] = int16(amp * maxInt16)
		}
	}

	path := filepath.Join(t.TempDir(), "deadair-test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if err := writeWAV(f, samples, opts.SampleRate, opts.Channels); err != nil {
		f.Close()
		t.Fatalf("failed to write WAV file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close test file: %v", err)
	}

	return path
}

// writeWAV writes a 16-bit PCM WAV file
func writeWAV(f *os.File, samples []int16, sampleRate, channels int) error {
	const bitsPerSample = 16

	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := len(samples) * 2
	fileSize := 36 + dataSize

	// RIFF header
	if _, err := f.Write([]byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(fileSize)); err != nil {
		return err
	}
	if _, err := f.Write([]byte("WAVE")); err != nil {
		return err
	}

	// fmt subchunk
	if _, err := f.Write([]byte("fmt ")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(16)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(1)); err != nil { // PCM
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(channels)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(sampleRate)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(byteRate)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(blockAlign)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(bitsPerSample)); err != nil {
		return err
	}

	// data subchunk
	if _, err := f.Write([]byte("data")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(dataSize)); err != nil {
		return err
	}
	return binary.Write(f, binary.LittleEndian, samples)
}

// fakeReader serves synthetic constant-amplitude audio and counts reads so
// tests can verify early-exit behaviour without touching real files.
type fakeReader struct {
	totalFrames int64
	channels    int
	amplitude   float64
	// bursts maps a frame offset (as planned) to a louder amplitude for
	// the chunk starting there.
	bursts map[int64]float64
	// readErr, when set, is returned by every ReadWindow call.
	readErr error

	reads       int
	readOffsets []int64
	closed      bool
}

func (f *fakeReader) ReadWindow(frameOffset int64, frames int) ([]float64, error) {
	f.reads++
	f.readOffsets = append(f.readOffsets, frameOffset)

	if f.readErr != nil {
		return nil, f.readErr
	}
	if frameOffset >= f.totalFrames {
		return nil, nil
	}
	if remaining := f.totalFrames - frameOffset; int64(frames) > remaining {
		frames = int(remaining)
	}

	amp := f.amplitude
	if burst, ok := f.bursts[frameOffset]; ok {
		amp = burst
	}

	channels := f.channels
	if channels == 0 {
		channels = 1
	}
	samples := make([]float64, frames*channels)
	for i := range samples {
		if i%2 == 1 {
			samples[i] = -amp
		} else {
			samples[i] = amp
		}
	}
	return samples, nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}
